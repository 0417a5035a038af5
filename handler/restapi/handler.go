package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blinky-z/PostsAPI/models"
	"github.com/sirupsen/logrus"
)

// general error messages
const (
	// BadRequestBody - body is absent, is not JSON or is not a JSON object
	BadRequestBody = "Request body must be a valid JSON"
	// NotFound - no route matches the request path
	NotFound = "Not found"
	// MethodNotAllowed - route exists but does not accept the request method
	MethodNotAllowed = "Method not allowed"
)

// maxRequestBodySize - requests with bigger bodies are rejected as bad requests
const maxRequestBodySize int64 = 1 << 20

var errNotJSONObject = errors.New("body is not a JSON object")

// NoSuchPostMessage - error message for requests referencing absent post
func NoSuchPostMessage(postID string) string {
	return fmt.Sprintf("Post with id %s not found", postID)
}

// MissingFieldsMessage - error message for creation requests without required fields
func MissingFieldsMessage(fields []string) string {
	return "Missing required fields: " + strings.Join(fields, ", ")
}

// PostDeletedMessage - confirmation message of post deletion
func PostDeletedMessage(postID int) string {
	return fmt.Sprintf("Post with id %d has been deleted successfully.", postID)
}

func respondWithJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// RespondWithError - helper function for responding with {"error": message}
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithBody(w, code, &models.ErrorResponse{Error: message})
}

// RespondWithBody - helper function for responding with payload encoded as JSON
func RespondWithBody(w http.ResponseWriter, code int, payload interface{}) {
	encodedResponse, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, code, encodedResponse)
}

// decodeJSONObject - decodes request body that must be a JSON object into v
// returns the number of keys of the object
func decodeJSONObject(w http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		return 0, err
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil {
		return 0, err
	}
	// literal null decodes without error
	if fields == nil {
		return 0, errNotJSONObject
	}

	if err = json.Unmarshal(body, v); err != nil {
		return 0, err
	}
	return len(fields), nil
}

// NotFoundHandler - responds to requests for unknown routes
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusNotFound, NotFound)
	})
}

// MethodNotAllowedHandler - responds to requests with a method the route does not serve
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusMethodNotAllowed, MethodNotAllowed)
	})
}

// RecoveryLogger - adapts logrus to the panic logger of gorilla recovery handler
type RecoveryLogger struct {
	Log *logrus.Entry
}

func (l RecoveryLogger) Println(v ...interface{}) {
	l.Log.Error(v...)
}
