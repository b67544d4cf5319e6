package utils

import (
	"careplan-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseIDURLParam reads a chi URL parameter as an unsigned 64-bit entity
// identifier.
func ParseIDURLParam(r *http.Request, paramName string) (uint64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}
