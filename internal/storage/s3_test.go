package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("not really a png"))

	tests := []struct {
		name          string
		dataURL       string
		expectedType  string
		expectedError bool
	}{
		{
			name:         "Valid png data URL",
			dataURL:      "data:image/png;base64," + payload,
			expectedType: "image/png",
		},
		{
			name:         "Valid jpeg data URL",
			dataURL:      "data:image/jpeg;base64," + payload,
			expectedType: "image/jpeg",
		},
		{
			name:          "Missing data prefix",
			dataURL:       "image/png;base64," + payload,
			expectedError: true,
		},
		{
			name:          "Missing payload separator",
			dataURL:       "data:image/png;base64",
			expectedError: true,
		},
		{
			name:          "Not base64 encoded",
			dataURL:       "data:image/png;utf8,hello",
			expectedError: true,
		},
		{
			name:          "Corrupt payload",
			dataURL:       "data:image/png;base64,!!!not-base64!!!",
			expectedError: true,
		},
		{
			name:          "Unsupported content type",
			dataURL:       "data:application/pdf;base64," + payload,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, contentType, err := ParseDataURL(tt.dataURL)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidDataURL)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedType, contentType)
			assert.Equal(t, []byte("not really a png"), raw)
		})
	}
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "books/book_abc.jpg",
		KeyFromURL("https://bucket.s3.eu-west-1.amazonaws.com/books/book_abc.jpg"))
	assert.Equal(t, "", KeyFromURL("https://example.com/books/book_abc.jpg"))
	assert.Equal(t, "", KeyFromURL(""))
}
