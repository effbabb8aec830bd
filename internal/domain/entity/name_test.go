package entity

import (
	"strings"
	"testing"

	domainerrors "mart/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName_Null(t *testing.T) {
	_, err := ParseName(nil)
	assert.True(t, errors.Is(err, domainerrors.ErrNullName))
}

func TestNewName_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *domainerrors.BaseError
	}{
		{"21 characters", strings.Repeat("a", 21), domainerrors.ErrExceedName},
		{"spaces only", "   ", domainerrors.ErrBlankName},
		{"empty", "", domainerrors.ErrBlankName},
		{"tabs and newlines", "\t\n", domainerrors.ErrBlankName},
		{"long and blank", strings.Repeat(" ", 21), domainerrors.ErrExceedName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestNewName_Valid(t *testing.T) {
	for _, value := range []string{"a", "치킨", strings.Repeat("b", 20), strings.Repeat("가", 20), " padded "} {
		name, err := NewName(value)
		require.NoError(t, err, value)
		assert.Equal(t, value, name.String())
	}
}
