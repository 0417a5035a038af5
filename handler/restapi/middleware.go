package restapi

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader - header carrying the request ID, both in requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestID - assigns every request an ID unless the client already sent one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			r.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// AccessLog - logs every served request with its status and duration
func AccessLog(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, params handlers.LogFormatterParams) {
			log.WithFields(logrus.Fields{
				"request_id": params.Request.Header.Get(RequestIDHeader),
				"method":     params.Request.Method,
				"path":       params.URL.Path,
				"status":     params.StatusCode,
				"size":       params.Size,
				"duration":   time.Since(params.TimeStamp),
			}).Info("Request served")
		})
	}
}
