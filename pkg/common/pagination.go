package common

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

const (
	// DefaultPageSize is used when the client sends no limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit query parameter.
	MaxPageSize = 100
)

// PageRequest is what list handlers read off the query string.
type PageRequest struct {
	Limit     int32
	NextToken string
	Status    string
}

// ExtractPageRequest reads limit, nextToken and status from the request,
// clamping the limit to [1, MaxPageSize].
func ExtractPageRequest(r *http.Request) PageRequest {
	p := PageRequest{Limit: DefaultPageSize}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			if n > MaxPageSize {
				n = MaxPageSize
			}
			p.Limit = int32(n)
		}
	}

	p.NextToken = r.URL.Query().Get("nextToken")
	p.Status = r.URL.Query().Get("status")

	return p
}

// EncodeNextToken turns DynamoDB's LastEvaluatedKey into an opaque cursor.
// Key attributes here are always strings, so only string members are carried.
func EncodeNextToken(lastEvaluatedKey map[string]types.AttributeValue) string {
	if len(lastEvaluatedKey) == 0 {
		return ""
	}

	flat := make(map[string]string, len(lastEvaluatedKey))
	for name, av := range lastEvaluatedKey {
		if s, ok := av.(*types.AttributeValueMemberS); ok {
			flat[name] = s.Value
		}
	}
	if len(flat) == 0 {
		return ""
	}

	data, err := json.Marshal(flat)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeNextToken turns a cursor back into an ExclusiveStartKey. An empty
// token yields nil; a malformed one yields a validation error.
func DecodeNextToken(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid nextToken").WithCause(err)
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, apperrors.NewValidationError("invalid nextToken").WithCause(err)
	}

	key := make(map[string]types.AttributeValue, len(flat))
	for name, value := range flat {
		key[name] = &types.AttributeValueMemberS{Value: value}
	}
	return key, nil
}
