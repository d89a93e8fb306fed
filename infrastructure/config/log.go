package config

import (
	"path/filepath"

	"github.com/kaspanet/powledger/infrastructure/logger"
)

const (
	defaultLogFilename    = "ledgerctl.log"
	defaultErrLogFilename = "ledgerctl_err.log"

	// showSubsystemsLevel is the special log level that lists the
	// subsystems instead of setting levels.
	showSubsystemsLevel = "show"
)

// LogFlags holds the logging configuration
type LogFlags struct {
	LogDir   string `long:"logdir" description:"Directory to write log files to. Logs go to stdout only if omitted"`
	LogLevel string `long:"loglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems" default:"info"`
}

// LogFile returns the path of the main log file, or an empty string if no
// log directory was configured.
func (logFlags *LogFlags) LogFile() string {
	if logFlags.LogDir == "" {
		return ""
	}
	return filepath.Join(logFlags.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the warnings-and-above log file, or an
// empty string if no log directory was configured.
func (logFlags *LogFlags) ErrLogFile() string {
	if logFlags.LogDir == "" {
		return ""
	}
	return filepath.Join(logFlags.LogDir, defaultErrLogFilename)
}

// ShowSubsystems returns whether the user asked for the list of subsystems
func (logFlags *LogFlags) ShowSubsystems() bool {
	return logFlags.LogLevel == showSubsystemsLevel
}

// InitLog sets the levels of the registered subsystems and starts the backend
// log with the configured outputs. Nothing is started if the level spec is
// invalid.
func (logFlags *LogFlags) InitLog() error {
	err := logger.ParseAndSetLogLevels(logFlags.LogLevel)
	if err != nil {
		return err
	}

	if logFlags.LogDir == "" {
		logger.InitLogStdout(logger.LevelTrace)
		return nil
	}
	logger.InitLog(logFlags.LogFile(), logFlags.ErrLogFile())
	return nil
}
