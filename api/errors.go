package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// requestErrorHandler answers bodies and parameters the generated handlers
// could not decode.
func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Warn("Failed to decode request", "error", err)

	if errors.Is(err, io.EOF) {
		a.writeError(w, r, http.StatusBadRequest, EmptyBody, "Must specify a body")
		return
	}

	var paramErr *InvalidParamFormatError
	if errors.As(err, &paramErr) {
		a.writeError(w, r, http.StatusBadRequest, InputValidationError, paramErr.Error())
		return
	}

	a.writeError(w, r, http.StatusBadRequest, InvalidBody, "Invalid body")
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).Error("Failed to write response", "error", err)
	a.writeError(w, r, http.StatusInternalServerError, InternalError, "Internal server error")
}

// writeJSON is for responses written outside the generated handlers: the
// webhook and the request validator.
func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		a.getLoggerOrBaseLogger(r.Context()).Error("failed to marshal response body", "error", err)
		statusCode = http.StatusInternalServerError
		jsonBody = []byte(`{"code":"InternalError","message":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonBody)
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, statusCode int, code ErrorCode, message string) {
	a.writeJSON(w, r, statusCode, Error{Code: code, Message: message})
}
