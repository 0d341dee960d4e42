package archivist

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/voodooEntity/minigram/src/system/interfaces"
)

const (
	LEVEL_DEBUG   = 1
	LEVEL_INFO    = 2
	LEVEL_WARNING = 3
	LEVEL_ERROR   = 4
	LEVEL_FATAL   = 5
)

// Granular debug verbosity, only applied when the log level is LEVEL_DEBUG
const (
	DEBUG_LEVEL_TRACE  = iota + 1 // execution flow tracing
	DEBUG_LEVEL_INFO              // informational debug messages
	DEBUG_LEVEL_DETAIL            // more detailed output
	DEBUG_LEVEL_DUMP              // dumping entire data structures
	DEBUG_LEVEL_MAX               // the highest, most detailed level
)

type Archivist struct {
	threshold  int
	debugLevel int
	logger     interfaces.LoggerInterface
}

type Config struct {
	Logger     interfaces.LoggerInterface
	LogLevel   int
	DebugLevel int
}

func New(conf *Config) *Archivist {
	archivist := &Archivist{}

	// in case no logger is given we gonne default
	// to logging to stdout
	archivist.SetLogger(conf.Logger)
	archivist.SetLogLevel(conf.LogLevel)
	if conf.LogLevel == LEVEL_DEBUG {
		archivist.SetDebugLevel(conf.DebugLevel)
	}

	return archivist
}

func (a *Archivist) store(message string, stype string, formatted bool, params []interface{}) {
	// dispatch the caller file+line number
	_, file, line, _ := runtime.Caller(2)
	arrPackagePath := strings.Split(file, "/")
	packageFile := arrPackagePath[len(arrPackagePath)-1]

	logLine := time.Now().Format("2006-01-02 15:04:05") + "|" + stype + "|" + packageFile + "#" + strconv.Itoa(line) + "|"
	if 0 == len(params) {
		logLine = logLine + message
	} else if formatted {
		logLine = logLine + fmt.Sprintf(message, params...)
	} else {
		logLine = logLine + message + "|" + fmt.Sprintf("%+v", params)
	}

	a.logger.Println(logLine)
}

func (a *Archivist) Error(message string, params ...interface{}) {
	if a.threshold <= LEVEL_ERROR {
		a.store(message, "error", false, params)
	}
}

func (a *Archivist) ErrorF(message string, params ...interface{}) {
	if a.threshold <= LEVEL_ERROR {
		a.store(message, "error", true, params)
	}
}

func (a *Archivist) Fatal(message string, params ...interface{}) {
	a.store(message, "fatal", false, params)
}

func (a *Archivist) FatalF(message string, params ...interface{}) {
	a.store(message, "fatal", true, params)
}

func (a *Archivist) Info(message string, params ...interface{}) {
	if a.threshold <= LEVEL_INFO {
		a.store(message, "info", false, params)
	}
}

func (a *Archivist) InfoF(message string, params ...interface{}) {
	if a.threshold <= LEVEL_INFO {
		a.store(message, "info", true, params)
	}
}

func (a *Archivist) Warning(message string, params ...interface{}) {
	if a.threshold <= LEVEL_WARNING {
		a.store(message, "warning", false, params)
	}
}

func (a *Archivist) WarningF(message string, params ...interface{}) {
	if a.threshold <= LEVEL_WARNING {
		a.store(message, "warning", true, params)
	}
}

func (a *Archivist) Debug(level int, message string, params ...interface{}) {
	if a.threshold <= LEVEL_DEBUG && level <= a.debugLevel {
		a.store(message, "debug", false, params)
	}
}

func (a *Archivist) DebugF(level int, message string, params ...interface{}) {
	if a.threshold <= LEVEL_DEBUG && level <= a.debugLevel {
		a.store(message, "debug", true, params)
	}
}

func (a *Archivist) SetLogLevel(logLevel int) {
	// check for non initialized log level first
	if 0 == logLevel {
		logLevel = LEVEL_WARNING
	}
	if logLevel < LEVEL_DEBUG || logLevel > LEVEL_FATAL {
		a.Error("Given LOG_LEVEL is unknown, defaulting to LEVEL_WARNING provided was: ", logLevel)
		logLevel = LEVEL_WARNING
	}
	a.threshold = logLevel
}

func (a *Archivist) SetDebugLevel(level int) {
	if level < 0 {
		level = 0
	}
	a.debugLevel = level
}

func (a *Archivist) SetLogger(logger interfaces.LoggerInterface) {
	if nil == logger {
		logger = log.New(os.Stdout, "", 0)
	}
	a.logger = logger
}
