//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 7, 15, 10, 30, 45, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	// microsecond precision survives the round trip
	assert.True(t, createdAt.Equal(gotTime), "want %v, got %v", createdAt, gotTime)
}

func TestDecodeAfterCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty cursor", ""},
		{"not base64", "!!!not-base64!!!"},
		{"missing version prefix", base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.NewString()))},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:1234-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{"non-numeric timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"invalid uuid", base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
