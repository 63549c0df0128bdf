package repository_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastebookhq/tastebook/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 9_000_000_000} {
		cursor := repository.EncodeCursor(id)
		assert.Equal(t, id, repository.DecodeCursor(cursor))
	}
}

func TestDecodeCursorInvalidInputsStartFromBeginning(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"base64 but not a number", base64.StdEncoding.EncodeToString([]byte("banana"))},
		{"negative id", base64.StdEncoding.EncodeToString([]byte("-10"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Zero(t, repository.DecodeCursor(tc.cursor))
		})
	}
}
