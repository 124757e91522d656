package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Types int

const (
	Info Types = iota
	Error
	Warn
	Fatal
)

type Message struct {
	Timestamp time.Time
	Tag       string
	Message   string
	LogTypes  Types
}

// manager is shared by every tagged Logger created after InitLogger.
type manager struct {
	view    io.Writer
	dev     bool
	logFile *os.File
	file    *logrus.Logger
	logChan chan Message
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

type Logger struct {
	tag string
	m   *manager
}

var (
	logManager *manager
	once       sync.Once
)

// InitLogger sets up the process wide log sinks. view receives coloured Warn,
// Error and Fatal lines always and Info lines in dev mode. logPath (when set)
// is the directory of the log file.
func InitLogger(dev bool, logPath string, view io.Writer) error {
	var err error
	once.Do(func() {
		logManager, err = newManager(dev, logPath, view)
	})
	return err
}

func newManager(dev bool, logPath string, view io.Writer) (*manager, error) {
	m := &manager{
		view:    view,
		dev:     dev,
		logChan: make(chan Message, 100),
		done:    make(chan struct{}),
	}

	if logPath == "" {
		close(m.done)
		return m, nil
	}

	timestamp := time.Now().Format("20060102_150405")
	fileName := fmt.Sprintf("processtext_log_%s.log", timestamp)
	filePath := filepath.Join(logPath, fileName)

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	m.logFile = file
	m.file = logrus.New()
	m.file.SetOutput(file)
	m.file.SetLevel(logrus.InfoLevel)
	m.file.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	go m.processLogs()
	return m, nil
}

// NewLogger returns a logger tagged with tag. Before InitLogger it discards
// everything.
func NewLogger(tag string) *Logger {
	if logManager == nil {
		return &Logger{tag: tag, m: &manager{closed: true}}
	}
	return &Logger{tag: tag, m: logManager}
}

func (m *manager) processLogs() {
	defer close(m.done)
	for msg := range m.logChan {
		m.file.WithTime(msg.Timestamp).
			WithField("tag", msg.Tag).
			Log(msg.LogTypes.level(), msg.Message)
	}
}

func (l *Logger) log(logTypes Types, v ...interface{}) {
	// Operands are always space separated.
	message := strings.TrimSuffix(fmt.Sprintln(v...), "\n")

	l.m.mu.RLock()
	defer l.m.mu.RUnlock()
	if l.m.closed {
		return
	}

	// Info lines are dev only; the rest always reach the console, shown or not.
	if l.m.dev || logTypes != Info {
		if l.m.view != nil {
			var format string
			switch logTypes {
			case Info:
				format = "[green]DEBUG (%s): %s[-]\n"
			case Error:
				format = "[red]DEBUG (%s): %s[-]\n"
			case Warn:
				format = "[yellow]DEBUG (%s): %s[-]\n"
			case Fatal:
				format = "[red]DEBUG (%s): %s[-]\n"
			}
			fmt.Fprintf(l.m.view, format, l.tag, message)
		} else if l.m.dev {
			log.Printf("(%s) %s: %s", l.tag, logTypes.toString(), message)
		}
	}

	if l.m.file != nil {
		l.m.logChan <- Message{
			Timestamp: time.Now(),
			Tag:       l.tag,
			Message:   message,
			LogTypes:  logTypes,
		}
	}
}

func (l *Logger) Info(v ...interface{}) {
	l.log(Info, v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.log(Error, v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(Warn, v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(Fatal, v...)
	l.Close()
	os.Exit(1)
}

// Close flushes pending file lines and closes the log file. Later calls on any
// logger sharing the manager are dropped.
func (l *Logger) Close() {
	l.m.mu.Lock()
	if l.m.closed {
		l.m.mu.Unlock()
		return
	}
	l.m.closed = true
	close(l.m.logChan)
	l.m.mu.Unlock()

	<-l.m.done
	if l.m.logFile != nil {
		l.m.logFile.Close()
	}
}

func (t Types) toString() string {
	switch t {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (t Types) level() logrus.Level {
	switch t {
	case Error:
		return logrus.ErrorLevel
	case Warn:
		return logrus.WarnLevel
	case Fatal:
		// logrus.FatalLevel would exit from the writer goroutine.
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
