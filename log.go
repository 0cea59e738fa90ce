package boxwhisker

import (
	"io"

	"github.com/op/go-logging"
)

// defaultLogFormat defines the format used for log output.
const defaultLogFormat = "%{time:2006/01/02 15:04:05} %{level:-8s} %{module}/%{shortfunc}: %{message}"

// NewLogger returns a logger for module writing to w. Level is one of
// "critical", "error", "warning", "notice", "info" or "debug"; unknown
// levels mean info. The backend is private to the returned logger, the
// global go-logging backend is left alone.
func NewLogger(w io.Writer, level, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)
	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	l := logging.MustGetLogger(module)
	l.SetBackend(lvlBackend)
	return l
}

func discardLogger(module string) *logging.Logger {
	return NewLogger(io.Discard, "critical", module)
}
