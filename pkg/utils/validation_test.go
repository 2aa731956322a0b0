package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createItemRequest struct {
	Name  string `validate:"required"`
	Level string `validate:"omitempty,oneof=beginner advanced"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(createItemRequest{Name: "Algebra", Level: "beginner"}))
}

func TestValidateStruct_JoinsFieldMessages(t *testing.T) {
	err := ValidateStruct(createItemRequest{Level: "wizard"})

	require.Error(t, err)
	assert.Equal(t, "name is required; level must be one of: beginner advanced", err.Error())
}

func TestValidateStruct_PercentInParam(t *testing.T) {
	type discountRequest struct {
		Discount string `validate:"required,oneof=50% 100%"`
	}

	err := ValidateStruct(discountRequest{Discount: "75%"})

	require.Error(t, err)
	// Message must come through verbatim, not be treated as a format string.
	assert.Equal(t, "discount must be one of: 50% 100%", err.Error())
}
