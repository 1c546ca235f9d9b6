package logging

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// RequestLogger wraps a handler tree so every request carries a LogData in its
// context, tagged with a request ID, and emits a completion line with timings.
func RequestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		if requestID, err := uuid.NewV4(); err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		endTimer := logData.AddTiming("durationMs")
		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.Log().Infof("Handler.%v %v.Complete", req.Method, req.URL.Path)
	})
}

// WithLogData stores a LogData in the context for handlers further down.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside RequestLogger.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
