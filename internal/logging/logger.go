package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/trainingadventure/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogMaxSizeMB = 50
	logFileExt          = ".log"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	LogMaxSizeMB     int
	LogMaxBackups    int // 0 keeps all rotated files
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns a func that closes
// the log file, if one was opened.
func Setup(params LoggerSetupParams) func() {
	logrus.SetLevel(GetLevel(params.LogLevel))
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, closeOut := logOutput(params)
	logrus.SetOutput(out)
	return closeOut
}

func setupSentry(params LoggerSetupParams) {
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled, but no DSN given, skipping")
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

func logOutput(params LoggerSetupParams) (io.Writer, func()) {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout, func() {}
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, logFileExt) {
		fileName += logFileExt
	}

	maxSize := params.LogMaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultLogMaxSizeMB
	}

	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: params.LogMaxBackups,
		LocalTime:  false, // UTC
		Compress:   true,
	}
	closeFile := func() {
		if err := fileLogger.Close(); err != nil {
			logrus.Errorf("close log file %s: %s", fileName, err)
		}
	}

	if params.LogToStdout {
		logrus.Printf("writing logs to %s and STDOUT", fileName)
		return pkg.NewCombinedWriter(os.Stdout, fileLogger), closeFile
	}

	logrus.Printf("writing logs to %s", fileName)
	return fileLogger, closeFile
}

// GetLevel falls back to info on an unknown level name.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
