package utils

import (
	"net/http"

	"fitbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseRequestBody decodes the JSON body into dst, rejecting unknown fields.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
