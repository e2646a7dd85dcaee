package log

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var debug bool

// Setup sends log output to a rotating file, or to the console if debugMode is set.
func Setup(logFilePath string, debugMode bool) {
	debug = debugMode
	if debugMode {
		log.SetOutput(os.Stderr)
		return
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   logFilePath,
		MaxBackups: 3,
		MaxAge:     28, //days
	})
}

func Println(v ...interface{}) {
	log.Println(v...)
}

func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Debugf logs only in debug mode.
func Debugf(format string, v ...interface{}) {
	if debug {
		log.Printf(format, v...)
	}
}

func Fatal(v ...interface{}) {
	log.Fatal(v...)
}
