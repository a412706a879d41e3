package helpers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	type sample struct {
		Name  string `validate:"required"`
		Width int    `validate:"gte=50"`
	}

	err := validator.New().Struct(sample{Width: 30})
	require.Error(t, err)
	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := FormatValidationErrors(validationErrors)

	assert.Equal(t, "Name is required.", messages["Name"])
	assert.Equal(t, "Width must be 50 or greater.", messages["Width"])
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("swordfish")
	require.NotEmpty(t, hash)

	assert.True(t, PasswordCompare(hash, []byte("swordfish")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "jpg", FileExtension("sample.JPG"))
	assert.Equal(t, "png", FileExtension("a.b.png"))
	assert.Equal(t, "", FileExtension("noext"))
	assert.Equal(t, "", FileExtension("trailingdot."))
}
