package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	NOTICE
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG:  "DEBUG",
	INFO:   "INFO",
	NOTICE: "NOTICE",
	WARN:   "WARN",
	ERROR:  "ERROR",
	FATAL:  "FATAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

var currentLevel Level = INFO

// ParseLevel maps a config string to a Level
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "NOTICE":
		return NOTICE, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", level)
}

// SetLevel falls back to INFO on unknown names
func SetLevel(level string) {
	l, _ := ParseLevel(level)
	currentLevel = l
}

func CurrentLevel() Level {
	return currentLevel
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func output(level Level, component string, format string, v ...interface{}) {
	if currentLevel > level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	if component != "" {
		log.Printf("[%s] [%s] %s", level, component, msg)
		return
	}
	log.Printf("[%s] %s", level, msg)
}

func Debugf(format string, v ...interface{}) {
	output(DEBUG, "", format, v...)
}

func Infof(format string, v ...interface{}) {
	output(INFO, "", format, v...)
}

func Noticef(format string, v ...interface{}) {
	output(NOTICE, "", format, v...)
}

func Warnf(format string, v ...interface{}) {
	output(WARN, "", format, v...)
}

func Errorf(format string, v ...interface{}) {
	output(ERROR, "", format, v...)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf("[FATAL] "+format, v...)
}

// Logger tags every line with a component name
type Logger struct {
	component string
}

func New(component string) *Logger {
	return &Logger{component: component}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	output(DEBUG, l.component, format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	output(INFO, l.component, format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	output(WARN, l.component, format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	output(ERROR, l.component, format, v...)
}
