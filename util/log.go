package util

import (
	"log"
	"os"
)

var flagEnableTrace bool = os.Getenv("AQPICO_TRACE") == "1"

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func TraceEnabled() bool {
	return flagEnableTrace
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}
