package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	logFilePath string
	baseLogger  = newBaseLogger(os.Stdout)
)

func newBaseLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceFormatting: true,
	})
	return l
}

// Init sets the verbosity (0 info, 1 debug, 2+ trace) and, when logFile is
// set, tees output into a rotating log file.
func Init(verbosity int, logFile string) error {
	switch {
	case verbosity <= 0:
		baseLogger.SetLevel(logrus.InfoLevel)
	case verbosity == 1:
		baseLogger.SetLevel(logrus.DebugLevel)
	default:
		baseLogger.SetLevel(logrus.TraceLevel)
	}

	if logFile == "" {
		baseLogger.SetOutput(os.Stdout)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	f.Close()

	logFilePath = logFile
	baseLogger.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    5,
		MaxBackups: 10,
		MaxAge:     14,
	}))
	return nil
}

func GetLogger(prefix string) *logrus.Entry {
	return baseLogger.WithField("prefix", prefix)
}

func ShowUsing() {
	log := GetLogger("log")
	log.Infof("Using LOG_LEVEL = %s", baseLogger.GetLevel())
	if logFilePath != "" {
		log.Infof("Using LOG_FILE = %q", logFilePath)
	}
}
