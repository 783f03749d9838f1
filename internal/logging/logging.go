// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/askiada/go-identicon/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level returns the zerolog level of a level name, info when the name is unknown.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(name)]; ok {
		return l
	}

	return zerolog.InfoLevel
}

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
)

func colorize(s interface{}, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func consoleFormatLevel(i interface{}) string {
	switch i {
	case "trace", "debug":
		return colorize("DBG", colorMagenta)
	case "info":
		return colorize("INF", colorGreen)
	case "warn":
		return colorize("WRN", colorYellow)
	case "error":
		return colorize("ERR", colorRed)
	case "fatal":
		return colorize(colorize("FTL", colorRed), colorBold)
	default:
		return colorize("???", colorBold)
	}
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows"
}

// Setup configures the global logger. The returned function closes the log file, if any.
func Setup(cfg config.Log) (func(), error) {
	zerolog.SetGlobalLevel(Level(cfg.Level))

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to open log file %s", cfg.File)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()

		return func() { _ = f.Close() }, nil
	}

	if isTerminalAttached() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:         os.Stdout,
			TimeFormat:  "2006-01-02 15:04:05",
			FormatLevel: consoleFormatLevel,
		})
	}

	return func() {}, nil
}
