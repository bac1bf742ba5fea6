package route_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf_backend/internals/configs"
	"bookshelf_backend/internals/constants"
	"bookshelf_backend/internals/features/books/model"
	"bookshelf_backend/internals/features/books/route"
	"bookshelf_backend/internals/features/books/service"
)

func newApp(t *testing.T, opts ...service.Option) *fiber.App {
	t.Helper()
	store, err := service.NewBookStore(context.Background(), opts...)
	require.NoError(t, err)

	app := fiber.New(configs.FiberConfig())
	route.BooksRoutes(app, store)
	return app
}

// switchablePersister gagal menyimpan selama failing bernilai true.
type switchablePersister struct {
	mu      sync.Mutex
	failing bool
}

func (p *switchablePersister) Load(context.Context) ([]model.BookModel, error) { return nil, nil }

func (p *switchablePersister) Save(context.Context, []model.BookModel) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failing {
		return errors.New("disk full")
	}
	return nil
}

func (p *switchablePersister) fail(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing = v
}

type envelope struct {
	Status  string          `json:"status"`
	Message *string         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func createBook(t *testing.T, app *fiber.App, body string) string {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/books", body)
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		BookID string `json:"bookId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.BookID)
	return data.BookID
}

type summary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Publisher *string `json:"publisher"`
}

func listBooks(t *testing.T, app *fiber.App, query string) []summary {
	t.Helper()
	status, env := call(t, app, http.MethodGet, "/books"+query, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)
	assert.Nil(t, env.Message, "list responses carry no message")

	var data struct {
		Books []summary `json:"books"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotNil(t, data.Books)
	return data.Books
}

func Test_ExampleScenario(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, http.MethodPost, "/books", `{"name":"Dune","publisher":"Chilton","pageCount":500,"readPage":500}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "success", env.Status)
	require.NotNil(t, env.Message)
	assert.Equal(t, constants.MsgBookCreated, *env.Message)
	var created struct {
		BookID string `json:"bookId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = call(t, app, http.MethodPost, "/books", `{"name":"Foo","pageCount":100,"readPage":200}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount", *env.Message)

	status, env = call(t, app, http.MethodPost, "/books", `{"pageCount":10,"readPage":0}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Gagal menambahkan buku. Mohon isi nama buku", *env.Message)

	books := listBooks(t, app, "?finished=1")
	require.Len(t, books, 1)
	assert.Equal(t, created.BookID, books[0].ID)
	assert.Equal(t, "Dune", books[0].Name)
	require.NotNil(t, books[0].Publisher)
	assert.Equal(t, "Chilton", *books[0].Publisher)
}

func Test_GetByID_ReturnsFullRecord(t *testing.T) {
	app := newApp(t)
	id := createBook(t, app, `{"name":"Dune","year":1965,"author":"Frank Herbert","summary":"Spice","publisher":"Chilton","pageCount":500,"readPage":20,"reading":true}`)

	status, env := call(t, app, http.MethodGet, "/books/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)

	var data struct {
		Book map[string]any `json:"book"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	book := data.Book
	assert.Equal(t, id, book["id"])
	assert.Equal(t, "Dune", book["name"])
	assert.EqualValues(t, 1965, book["year"])
	assert.Equal(t, "Frank Herbert", book["author"])
	assert.Equal(t, "Spice", book["summary"])
	assert.Equal(t, "Chilton", book["publisher"])
	assert.EqualValues(t, 500, book["pageCount"])
	assert.EqualValues(t, 20, book["readPage"])
	assert.Equal(t, false, book["finished"])
	assert.Equal(t, true, book["reading"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, book["insertedAt"])
	assert.Equal(t, book["insertedAt"], book["updatedAt"])
}

func Test_GetByID_OmitsAbsentFields(t *testing.T) {
	app := newApp(t)
	id := createBook(t, app, `{"name":"Bare"}`)

	_, env := call(t, app, http.MethodGet, "/books/"+id, "")
	var data struct {
		Book map[string]any `json:"book"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	for _, key := range []string{"year", "author", "summary", "publisher", "pageCount", "readPage", "reading"} {
		assert.NotContains(t, data.Book, key)
	}
	assert.Equal(t, true, data.Book["finished"])
}

func Test_GetByID_NotFound(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, http.MethodGet, "/books/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Buku tidak ditemukan", *env.Message)
}

func Test_List_Filters(t *testing.T) {
	app := newApp(t)
	dune := createBook(t, app, `{"name":"Dune","pageCount":10,"readPage":10,"reading":false}`)
	messiah := createBook(t, app, `{"name":"Dune Messiah","pageCount":10,"readPage":3,"reading":true}`)
	emma := createBook(t, app, `{"name":"Emma","pageCount":10,"readPage":3,"reading":true}`)
	notes := createBook(t, app, `{"name":"dune notes"}`)

	ids := func(books []summary) []string {
		out := make([]string, 0, len(books))
		for _, b := range books {
			out = append(out, b.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "all", query: "", want: []string{dune, messiah, emma, notes}},
		{name: "name_case_insensitive", query: "?name=DUNE", want: []string{dune, messiah, notes}},
		{name: "empty_name_is_ignored", query: "?name=", want: []string{dune, messiah, emma, notes}},
		{name: "reading_1", query: "?reading=1", want: []string{messiah, emma}},
		{name: "reading_0", query: "?reading=0", want: []string{dune}},
		{name: "reading_empty_means_false", query: "?reading=", want: []string{dune}},
		{name: "reading_non_numeric_means_false", query: "?reading=abc", want: []string{dune}},
		{name: "reading_2_means_true", query: "?reading=2", want: []string{messiah, emma}},
		{name: "finished_0", query: "?finished=0", want: []string{messiah, emma}},
		{name: "conjunction", query: "?name=dune&reading=1&finished=0", want: []string{messiah}},
		{name: "no_match", query: "?name=zzz", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(listBooks(t, app, tc.query)))
		})
	}
}

func Test_Update(t *testing.T) {
	app := newApp(t)
	id := createBook(t, app, `{"name":"Dune","author":"Frank Herbert","pageCount":500,"readPage":10}`)

	status, env := call(t, app, http.MethodPut, "/books/"+id, `{"name":"Dune II","pageCount":300,"readPage":300}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Buku berhasil diperbarui", *env.Message)

	_, env = call(t, app, http.MethodGet, "/books/"+id, "")
	var data struct {
		Book map[string]any `json:"book"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Dune II", data.Book["name"])
	assert.Equal(t, true, data.Book["finished"])
	assert.NotContains(t, data.Book, "author")
}

func Test_Update_Failures(t *testing.T) {
	app := newApp(t)
	id := createBook(t, app, `{"name":"Dune"}`)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing_name",
			path:       "/books/" + id,
			body:       `{"pageCount":1}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Gagal memperbarui buku. Mohon isi nama buku",
		},
		{
			name:       "read_page_exceeds_page_count",
			path:       "/books/" + id,
			body:       `{"name":"Dune","pageCount":1,"readPage":2}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount",
		},
		{
			name:       "validation_before_not_found",
			path:       "/books/unknown",
			body:       `{"pageCount":1}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Gagal memperbarui buku. Mohon isi nama buku",
		},
		{
			name:       "not_found",
			path:       "/books/unknown",
			body:       `{"name":"Dune"}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Gagal memperbarui buku. Id tidak ditemukan",
		},
		{
			name:       "malformed_json",
			path:       "/books/" + id,
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Gagal memperbarui buku. Payload tidak valid",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, env := call(t, app, http.MethodPut, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, "fail", env.Status)
			require.NotNil(t, env.Message)
			assert.Equal(t, tc.wantMsg, *env.Message)
		})
	}
}

func Test_Delete(t *testing.T) {
	app := newApp(t)
	first := createBook(t, app, `{"name":"A"}`)
	second := createBook(t, app, `{"name":"B"}`)
	third := createBook(t, app, `{"name":"C"}`)

	status, env := call(t, app, http.MethodDelete, "/books/"+second, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Buku berhasil dihapus", *env.Message)

	books := listBooks(t, app, "")
	require.Len(t, books, 2)
	assert.Equal(t, first, books[0].ID)
	assert.Equal(t, third, books[1].ID)

	status, env = call(t, app, http.MethodDelete, "/books/"+second, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Buku gagal dihapus. Id tidak ditemukan", *env.Message)

	status, _ = call(t, app, http.MethodGet, "/books/"+second, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func Test_Create_NonJSONBodyIsTreatedAsEmpty(t *testing.T) {
	app := newApp(t)
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("name=Dune"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, env := send(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Gagal menambahkan buku. Mohon isi nama buku", *env.Message)
}

func Test_Create_MalformedJSON(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, http.MethodPost, "/books", `{"name":"Dune","pageCount":"many"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Gagal menambahkan buku. Payload tidak valid", *env.Message)
}

func Test_UnknownRouteUsesFailEnvelope(t *testing.T) {
	app := newApp(t)

	status, env := call(t, app, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "fail", env.Status)
}

func Test_PersistenceFailure(t *testing.T) {
	p := &switchablePersister{}
	app := newApp(t, service.WithPersister(p))

	id := createBook(t, app, `{"name":"Dune","pageCount":10,"readPage":2}`)
	p.fail(true)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "create", method: http.MethodPost, path: "/books", body: `{"name":"Emma"}`},
		{name: "update", method: http.MethodPut, path: "/books/" + id, body: `{"name":"Dune II"}`},
		{name: "delete", method: http.MethodDelete, path: "/books/" + id},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, env := call(t, app, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.Equal(t, "fail", env.Status)
			require.NotNil(t, env.Message)
			assert.Equal(t, constants.MsgInternalError, *env.Message)

			books := listBooks(t, app, "")
			require.Len(t, books, 1)
			assert.Equal(t, id, books[0].ID)
			assert.Equal(t, "Dune", books[0].Name)
		})
	}

	p.fail(false)
	createBook(t, app, `{"name":"Emma"}`)
	assert.Len(t, listBooks(t, app, ""), 2)
}
