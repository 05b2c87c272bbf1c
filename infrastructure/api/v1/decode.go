// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/crastudio/crastudio/domain/compliance"
)

// decodeJSON parses the request body into dst. A malformed body is a
// validation error.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", compliance.ErrValidation, err)
	}
	return nil
}
