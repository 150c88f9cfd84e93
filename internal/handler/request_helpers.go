package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/giftroll/internal/logger"
)

// MaxBodyBytes caps request bodies
const MaxBodyBytes = 1 << 16

// ValidationErrorResponse is returned when a body fails validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req domain.RollsBetRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := validateRequest(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fieldErrors(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. When it is missing the 400 has been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// pathInt64 parses a numeric chi URL parameter, writing a 400 with errMsg when it is not one
func pathInt64(w http.ResponseWriter, r *http.Request, name, errMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return id, true
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return pathInt64(w, r, "id", ErrMsgInvalidUserID)
}
