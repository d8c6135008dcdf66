package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCheck(t *testing.T) {
	v := New(50<<20, []string{"text/plain", "image/png", "application/pdf"})

	tests := []struct {
		name     string
		mimeType string
		size     int64
		reason   Reason
	}{
		{"small text file", "text/plain", 10, ""},
		{"exactly at limit", "image/png", 50 << 20, ""},
		{"one byte over limit", "application/pdf", 50<<20 + 1, SizeExceeded},
		{"huge file", "text/plain", 60 << 20, SizeExceeded},
		{"executable", "application/x-msdownload", 100, TypeNotAllowed},
		{"empty mime type", "", 100, TypeNotAllowed},
		{"oversize and bad type reports size first", "application/zip", 60 << 20, SizeExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Check(tt.mimeType, tt.size)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
			assert.NotEmpty(t, verr.Error())
		})
	}
}
