package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger handles run logging. Records always go to stderr; Init adds a per-run
// log file.
type Logger struct {
	mu       sync.Mutex
	zl       *zap.Logger
	verbose  bool
	filename string
	closer   func()
}

// NewLogger creates a Logger writing JSON records to stderr.
func NewLogger(verbose bool) (*Logger, error) {
	l := &Logger{verbose: verbose}
	zl, closer, err := l.build()
	if err != nil {
		return nil, err
	}
	l.zl = zl
	l.closer = closer
	return l, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// build opens the sinks itself so the returned closer can release the run file.
func (l *Logger) build(extraOutputs ...string) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if l.verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	sink, closer, err := zap.Open(append([]string{"stderr"}, extraOutputs...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)
	zl := zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	return zl, closer, nil
}

// RunLogFile returns the next free per-run log file name in logDir for the
// given day: nutdeck_<date>_<n>.log, n counting runs of that day from 1.
func RunLogFile(logDir string, day time.Time) string {
	dateStr := day.Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("nutdeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	return filepath.Join(logDir, fmt.Sprintf("nutdeck_%s_%d.log", dateStr, runCount))
}

// Init starts mirroring the log to a new file in logDir.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	filename := RunLogFile(logDir, time.Now())

	zl, closer, err := l.build(filename)
	if err != nil {
		return err
	}
	if l.zl != nil {
		_ = l.zl.Sync()
	}
	if l.closer != nil {
		l.closer()
	}
	l.zl = zl
	l.closer = closer
	l.filename = filename
	l.zl.Info("run started", zap.String("log_file", filename))
	return nil
}

// Filename returns the current log file, or "" when logging only to stderr.
func (l *Logger) Filename() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filename
}

// Zap exposes the underlying logger for packages that take *zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

// Named returns a child logger for a component.
func (l *Logger) Named(name string) *zap.Logger {
	return l.Zap().Named(name)
}

// Log writes a message at info level
func (l *Logger) Log(message string) {
	l.Zap().Info(message)
}

// Logf writes a formatted message at info level
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Zap().Sugar().Infof(format, args...)
}

// Close flushes buffered records and closes the run log file.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zl != nil {
		if l.filename != "" {
			l.zl.Info("run finished")
		}
		_ = l.zl.Sync()
	}
	if l.closer != nil {
		l.closer()
		l.closer = nil
		l.zl = zap.NewNop()
	}
}
