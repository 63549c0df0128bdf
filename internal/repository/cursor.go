package repository

import (
	"encoding/base64"
	"strconv"
)

// EncodeCursor encodes the last-seen item id into an opaque cursor.
func EncodeCursor(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeCursor decodes an opaque cursor back into an item id. Any invalid
// cursor decodes to 0, which listings interpret as "start of collection";
// a stale or garbled cursor is never an error.
func DecodeCursor(encoded string) int64 {
	if encoded == "" {
		return 0
	}
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(string(byt), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
