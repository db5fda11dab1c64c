package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. InitLogger must run before anything
// writes to it.
var Logger = logrus.New()

// servicePrefixHook tags every entry with the service name so aggregated
// logs from several deployments stay attributable.
type servicePrefixHook struct {
	service string
}

func (h *servicePrefixHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *servicePrefixHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.service + "] " + entry.Message
	return nil
}

// InitLogger configures the shared logger. LOG_LEVEL selects verbosity and
// LOG_FORMAT=json switches to structured output for log shippers.
func InitLogger(service string) {
	Logger.SetOutput(os.Stdout)

	raw := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if raw == "" {
		raw = "info"
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", raw)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Logger.AddHook(&servicePrefixHook{service: service})
}
