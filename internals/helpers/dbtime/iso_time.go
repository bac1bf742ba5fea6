package dbtime

import "time"

// ISOMillis sama dengan format Date.toISOString(): UTC, milidetik, akhiran Z.
const ISOMillis = "2006-01-02T15:04:05.000Z"

// FormatISO memformat waktu ke ISOMillis (selalu UTC).
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
