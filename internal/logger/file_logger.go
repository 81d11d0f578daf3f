package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger represents a file logger for composition sessions
type Logger struct {
	runName string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logDir  string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo   LogLevel = "INFO"
	LogLevelResult LogLevel = "RESULT"
	LogLevelError  LogLevel = "ERROR"
)

// NewLogger creates a new file logger for the named run
func NewLogger(runName string) (*Logger, error) {
	// Create log directory if it doesn't exist
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create log filename with timestamp
	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s.log", runName, timestamp)
	logPath := filepath.Join(logDir, filename)

	// Open or create log file
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.New(file, "", 0)

	l := &Logger{
		runName: runName,
		logFile: file,
		logger:  logger,
		logDir:  logDir,
	}

	// Write session start header
	l.writeSessionHeader()

	return l, nil
}

// writeSessionHeader writes a session start header to the log
func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🎸 COMPOSITION SESSION STARTED
================================================================================
Run: %s
Started: %s
================================================================================`,
		l.runName,
		time.Now().Format("2006-01-02 15:04:05"))

	l.logger.Println(header)
}

// writeEntry writes a timestamped, leveled line
func (l *Logger) writeEntry(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] %-6s %s", timestamp, level, message)
}

// LogInfo writes a general informational line
func (l *Logger) LogInfo(format string, args ...interface{}) {
	l.writeEntry(LogLevelInfo, format, args...)
}

// LogError writes an error line
func (l *Logger) LogError(format string, args ...interface{}) {
	l.writeEntry(LogLevelError, format, args...)
}

// LogGeneration records the score summary of one generation
func (l *Logger) LogGeneration(gen int, best, avg float64) {
	l.writeEntry(LogLevelInfo, "Gen %d: best=%.0f avg=%.1f", gen, best, avg)
}

// LogResult records the winning score and its tablature
func (l *Logger) LogResult(score float64, tablature []string) {
	l.writeEntry(LogLevelResult, "Final score: %.0f", score)

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range tablature {
		l.logger.Println(line)
	}
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.writeFooter()
		return l.logFile.Close()
	}
	return nil
}

// writeFooter writes a session end marker (caller holds the lock)
func (l *Logger) writeFooter() {
	l.logger.Printf("Session ended: %s", time.Now().Format("2006-01-02 15:04:05"))
	l.logger.Println("================================================================================")
}
