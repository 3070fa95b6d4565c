package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L       = zap.NewNop()
	S       = L.Sugar()
	logFile *os.File
)

// Options selects where logs go. With neither Debug nor File set the
// logger stays a no-op.
type Options struct {
	Debug bool
	File  string
}

// Init initializes the global logger.
// Debug logs go to stderr unless File is set (or EMACSIDE_LOG_FILE), in
// which case they are appended to that file.
func Init(opts Options) error {
	if v := os.Getenv("EMACSIDE_LOG_FILE"); v != "" {
		opts.File = v
	}
	if v := os.Getenv("EMACSIDE_DEBUG"); v != "" && v != "0" {
		opts.Debug = true
	}
	if !opts.Debug && opts.File == "" {
		return nil
	}

	var sink io.Writer = os.Stderr
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		logFile = f
		sink = f
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}
	initWith(sink, level)

	S.Debugw("logger initialized", "file", opts.File, "debug", opts.Debug)
	return nil
}

func initWith(w io.Writer, level zapcore.Level) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	L = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	S = L.Sugar()
}

// Close flushes and closes the logger, resetting it to a no-op.
func Close() {
	_ = L.Sync()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	L = zap.NewNop()
	S = L.Sugar()
}

func Debug(msg string, keysAndValues ...interface{}) {
	S.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	S.Infow(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	S.Errorw(msg, keysAndValues...)
}
