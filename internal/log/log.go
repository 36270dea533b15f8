package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex/log with the line handler and a level taken from the
// FOLIO_LOG env variable. Verbose forces debug regardless of the env.
func Init(verbose bool) {
	level := strings.ToUpper(os.Getenv("FOLIO_LOG"))
	if level == "" {
		level = "INFO"
	}
	log.SetHandler(&LineHandler{})
	log.SetLevelFromString(level)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// LineHandler writes one compact line per entry to stderr.
type LineHandler struct{}

// HandleLog implements the log.Handler interface.
func (h *LineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	fmt.Fprintf(os.Stderr, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return nil
}
