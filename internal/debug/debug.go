package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Log appends a debug entry to the named log file in cacheDir/logs/.
// Logging is best-effort; failures are swallowed so hooks stay silent.
func Log(cacheDir, logName, message string, data interface{}) {
	logDir := filepath.Join(cacheDir, "logs")
	_ = os.MkdirAll(logDir, 0o755)

	f, err := os.OpenFile(filepath.Join(logDir, logName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	ts := time.Now().Format("2006-01-02T15:04:05")
	fmt.Fprintf(f, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(f, "[%s] %s\n", ts, message)

	if data != nil {
		if b, err := json.MarshalIndent(data, "", "  "); err == nil {
			fmt.Fprintf(f, "%s\n", b)
		}
	}
}

// Read returns the contents of a debug log, or "" if it doesn't exist.
func Read(cacheDir, logName string) string {
	data, err := os.ReadFile(filepath.Join(cacheDir, "logs", logName))
	if err != nil {
		return ""
	}
	return string(data)
}
