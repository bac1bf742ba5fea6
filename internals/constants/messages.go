package constants

// Pesan response buku. Teksnya harus persis sama, klien lama mencocokkan string ini.
const (
	MsgBookCreated = "Buku berhasil ditambahkan"
	MsgBookUpdated = "Buku berhasil diperbarui"
	MsgBookDeleted = "Buku berhasil dihapus"

	MsgCreateMissingName      = "Gagal menambahkan buku. Mohon isi nama buku"
	MsgCreateReadPageTooLarge = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	MsgCreateInvalidPayload   = "Gagal menambahkan buku. Payload tidak valid"

	MsgUpdateMissingName      = "Gagal memperbarui buku. Mohon isi nama buku"
	MsgUpdateReadPageTooLarge = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	MsgUpdateInvalidPayload   = "Gagal memperbarui buku. Payload tidak valid"
	MsgUpdateNotFound         = "Gagal memperbarui buku. Id tidak ditemukan"

	MsgBookNotFound   = "Buku tidak ditemukan"
	MsgDeleteNotFound = "Buku gagal dihapus. Id tidak ditemukan"

	MsgInternalError   = "Terjadi kesalahan pada server"
	MsgTooManyRequests = "❌ Terlalu banyak permintaan. Silakan coba lagi nanti."
)

// Nilai BOOKS_STORAGE yang dikenali.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)
