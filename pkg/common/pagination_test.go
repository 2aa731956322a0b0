package common

import (
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

func TestNextTokenRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "course-42"},
	}

	token := EncodeNextToken(key)
	require.NotEmpty(t, token)

	decoded, err := DecodeNextToken(token)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	s, ok := decoded["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "course-42", s.Value)
}

func TestEncodeNextToken_Empty(t *testing.T) {
	assert.Empty(t, EncodeNextToken(nil))
	assert.Empty(t, EncodeNextToken(map[string]types.AttributeValue{}))
}

func TestDecodeNextToken_Empty(t *testing.T) {
	key, err := DecodeNextToken("")
	assert.NoError(t, err)
	assert.Nil(t, key)
}

func TestDecodeNextToken_Malformed(t *testing.T) {
	for _, token := range []string{"not base64!!", "bm90IGpzb24="} {
		_, err := DecodeNextToken(token)
		require.Error(t, err, token)
		assert.True(t, apperrors.IsValidation(err), token)
	}
}

func TestExtractPageRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/courses", nil)
		p := ExtractPageRequest(r)
		assert.Equal(t, int32(DefaultPageSize), p.Limit)
		assert.Empty(t, p.NextToken)
		assert.Empty(t, p.Status)
	})

	t.Run("clamps limit", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/courses?limit=500", nil)
		assert.Equal(t, int32(MaxPageSize), ExtractPageRequest(r).Limit)
	})

	t.Run("ignores bad limit", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/courses?limit=abc", nil)
		assert.Equal(t, int32(DefaultPageSize), ExtractPageRequest(r).Limit)

		r = httptest.NewRequest("GET", "/courses?limit=-3", nil)
		assert.Equal(t, int32(DefaultPageSize), ExtractPageRequest(r).Limit)
	})

	t.Run("passes token and status", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/courses?limit=5&nextToken=abc&status=active", nil)
		p := ExtractPageRequest(r)
		assert.Equal(t, int32(5), p.Limit)
		assert.Equal(t, "abc", p.NextToken)
		assert.Equal(t, "active", p.Status)
	})
}
