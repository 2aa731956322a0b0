package handlers

import (
	"fmt"
	"net/http"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// maxBodyBytes caps request bodies. Bulk question uploads are the largest
// legitimate payload.
const maxBodyBytes = 1 << 20

// pageFrom reads the list-query parameters off the request.
func pageFrom(r *http.Request) ports.Page {
	p := common.ExtractPageRequest(r)
	return ports.Page{
		Limit:     p.Limit,
		NextToken: p.NextToken,
		Status:    p.Status,
	}
}

// updateFields pulls the allowed attributes out of a patch body. Unknown
// fields are rejected rather than silently dropped.
func updateFields(body map[string]any, allowed ...string) (map[string]any, error) {
	if len(body) == 0 {
		return nil, apperrors.NewValidationError("request body must set at least one field")
	}

	ok := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		ok[name] = true
	}

	set := make(map[string]any, len(body))
	for name, value := range body {
		if !ok[name] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("field %q cannot be updated", name))
		}
		set[name] = value
	}
	return set, nil
}
