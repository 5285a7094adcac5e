package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	resp := Error("something went wrong")
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestMessage(t *testing.T) {
	resp := Message("user created successfully")
	assert.Equal(t, "user created successfully", resp.Message)
}

func TestValidationError(t *testing.T) {
	type req struct {
		Username string `validate:"required"`
		Email    string `validate:"required,email"`
	}

	v := validator.New()
	err := v.Struct(req{Email: "not-an-email"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Contains(t, resp.Error, "field Username is a required field")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
}
