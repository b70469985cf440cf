package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// nonFieldErrors is the errors key for problems not tied to one input.
const nonFieldErrors = "non_field_errors"

// formState is the body for GET form pages and 422 responses.
type formState struct {
	Form   map[string]string   `json:"form"`
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func writeInternal(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// writeForm renders form state. A nil errs map is sent as {}.
func writeForm(w http.ResponseWriter, status int, form map[string]string, errs map[string][]string) {
	if errs == nil {
		errs = map[string][]string{}
	}
	writeJSON(w, status, formState{Form: form, Errors: errs})
}

// fieldErrors groups validation messages by field.
func fieldErrors(err error) map[string][]string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return map[string][]string{nonFieldErrors: {err.Error()}}
	}
	return ve.ByField()
}

// readForm reads the named fields from a urlencoded/multipart form or a JSON
// object body, depending on Content-Type. Missing fields read as "".
func readForm(w http.ResponseWriter, r *http.Request, fields ...string) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form := make(map[string]string, len(fields))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		for _, f := range fields {
			if v, ok := body[f].(string); ok {
				form[f] = v
			}
		}
		return form, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	for _, f := range fields {
		form[f] = r.PostForm.Get(f)
	}
	return form, nil
}

// parseID parses a path id. Malformed ids are reported as not found.
func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
