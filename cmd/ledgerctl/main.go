package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/powledger/infrastructure/logger"
	"github.com/kaspanet/powledger/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, nil)

	subCmd, cfg, subConfig, err := parseCommandLine(os.Args[1:])
	if err != nil {
		// parseCommandLine already printed the error
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = cfg.InitLog()
	if err != nil {
		printErrorAndExit(err)
	}
	defer logger.BackendLog.Close()

	log.Debugf("Running %s with params %s", subCmd, cfg.ActiveParams.Name)

	params := cfg.ActiveParams
	switch subCmd {
	case hashSubCmd:
		err = hashFields(subConfig.(*hashConfig), params, os.Stdout)
	case verifySubCmd:
		err = verify(subConfig.(*verifyConfig), params, os.Stdout)
	case auditSubCmd:
		err = audit(subConfig.(*auditConfig), params, os.Stdout)
	case appendSubCmd:
		err = appendBlock(subConfig.(*appendConfig), params, os.Stdout)
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		logger.BackendLog.Close()
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
