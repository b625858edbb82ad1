package logs

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

var logger = log.New(os.Stdout, "", 0)

// SetOutput redirects the log stream, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// LogJSON writes one JSON line carrying the severity ("DEBUG", "INFO",
// "WARN", "ERROR" or "FATAL"), the message, an RFC3339 timestamp and any
// extra fields.
func LogJSON(level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"severity": level,
		"message":  message,
		"time":     time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		logEntry[k] = v
	}
	jsonLog, _ := json.Marshal(logEntry)
	logger.Println(string(jsonLog))
}
