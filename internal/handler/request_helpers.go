package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ngogiaquyen/coinshop/internal/auth"
	"github.com/ngogiaquyen/coinshop/internal/domain"
	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If it returns an error the HTTP response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, KindInvalidRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// CallerAccountID extracts the authenticated account id placed in the
// context by the auth middleware. A missing id means the route was mounted
// outside the middleware; the caller is rejected, not trusted.
func CallerAccountID(r *http.Request, w http.ResponseWriter) (string, bool) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("Handler reached without caller identity", "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, KindUnauthorized, domain.ErrMsgUnauthorized)
		return "", false
	}
	return accountID, true
}

// GetOptionalIntParam parses an optional integer query parameter, falling
// back to defaultValue when absent. A malformed value is a client error.
func GetOptionalIntParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, KindInvalidRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return value, true
}
