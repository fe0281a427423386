package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var std = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "primlist",
})

// Setup 设置日志级别，level 为 debug、info、warn、error 之一
func Setup(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q", level)
	}
	std.SetLevel(lvl)
	return nil
}

// SetOutput 将日志重定向到 w
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Debugf(format string, v ...any) {
	std.Debugf(format, v...)
}

func Info(msg any, keyvals ...any) {
	std.Info(msg, keyvals...)
}

func Infof(format string, v ...any) {
	std.Infof(format, v...)
}

func Warn(msg any, keyvals ...any) {
	std.Warn(msg, keyvals...)
}

func Warnf(format string, v ...any) {
	std.Warnf(format, v...)
}

func Error(msg any, keyvals ...any) {
	std.Error(msg, keyvals...)
}

func Errorf(format string, v ...any) {
	std.Errorf(format, v...)
}

func Fatal(msg any, keyvals ...any) {
	std.Fatal(msg, keyvals...)
}
