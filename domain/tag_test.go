package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Physics", "physics"},
		{"spaces", "Organic Chemistry", "organic-chemistry"},
		{"extra whitespace", "  Modern   History  ", "modern-history"},
		{"underscores", "unit_testing basics", "unit-testing-basics"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusInactive.IsValid())
	assert.True(t, StatusArchived.IsValid())
	assert.False(t, Status("deleted").IsValid())
	assert.False(t, Status("").IsValid())
}
