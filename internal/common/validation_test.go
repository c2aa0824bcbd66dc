package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClientID(t *testing.T) {
	tests := []struct {
		name    string
		cid     string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"uuid", "3f1c2a9e-6a6b-4a8e-9d55-0c7e1f9a2b11", false},
		{"client scheme", "web:42.7", false},
		{"max length", strings.Repeat("a", MaxClientIDLength), false},
		{"too long", strings.Repeat("a", MaxClientIDLength+1), true},
		{"whitespace", "abc def", true},
		{"unicode", "héllo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientID(tt.cid)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMediaKey(t *testing.T) {
	assert.NoError(t, ValidateMediaKey(""))
	assert.NoError(t, ValidateMediaKey("media/u1/photo.jpg"))
	assert.ErrorIs(t, ValidateMediaKey(" media/u1/photo.jpg"), ErrValidation)
	assert.ErrorIs(t, ValidateMediaKey(strings.Repeat("k", MaxMediaKeyLength+1)), ErrValidation)
}
