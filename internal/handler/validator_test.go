package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedRequest struct {
	Name     string `validate:"required,notblank,max=8"`
	Quantity int    `validate:"min=1"`
}

func TestValidator_NotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"word", "Grimble", true},
		{"padded word", "  Bob  ", true},
		{"spaces", "   ", false},
		{"tab and newline", "\t\n", false},
		{"too long", strings.Repeat("a", 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(namedRequest{Name: tt.value, Quantity: 1})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("field messages", func(t *testing.T) {
		err := GetValidator().ValidateStruct(namedRequest{Name: strings.Repeat("a", 9), Quantity: 0})
		require.Error(t, err)

		got := FormatValidationError(err)

		assert.Equal(t, map[string]string{
			"name":     "Must be at most 8",
			"quantity": "Must be at least 1",
		}, got)
	})

	t.Run("non validation error", func(t *testing.T) {
		got := FormatValidationError(errors.New("boom"))

		assert.Equal(t, map[string]string{"error": "Invalid request format"}, got)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
