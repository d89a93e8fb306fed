package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/powledger/infrastructure/config"
	"github.com/kaspanet/powledger/infrastructure/logger"
	"github.com/kaspanet/powledger/version"
	"github.com/pkg/errors"
)

const (
	hashSubCmd   = "hash"
	verifySubCmd = "verify"
	auditSubCmd  = "audit"
	appendSubCmd = "append"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
	config.NetworkFlags
	config.LogFlags
}

type hashConfig struct {
	ID           uint64 `long:"id" description:"Id of the block"`
	PreviousHash string `long:"prev" description:"Hash of the previous block, or \"genesis\"" required:"true"`
	Data         string `long:"data" description:"Payload of the block"`
	Timestamp    int64  `long:"timestamp" description:"Timestamp of the block in seconds since epoch"`
	Nonce        uint64 `long:"nonce" description:"Nonce of the block"`
}

type verifyConfig struct {
	Block    string `long:"block" short:"b" description:"JSON file with the candidate block, - for stdin" required:"true"`
	Previous string `long:"previous" short:"p" description:"JSON file with the block the candidate should follow" required:"true"`
	Dump     bool   `long:"dump" description:"Dump both blocks before validating them"`
}

type auditConfig struct {
	Chain string `long:"chain" short:"c" description:"JSON file with an array of blocks, - for stdin" required:"true"`
	Dump  bool   `long:"dump" description:"Dump the failing block if the chain is invalid"`
}

type appendConfig struct {
	Chain      string `long:"chain" short:"c" description:"JSON file with an array of blocks. Its first block is trusted as the root" required:"true"`
	Block      string `long:"block" short:"b" description:"JSON file with the candidate block" required:"true"`
	PrintChain bool   `long:"print-chain" description:"Print the resulting chain as JSON. Nothing is written back to the chain file"`
}

func parseCommandLine(args []string) (subCommand string, cfg *configFlags, subConfig interface{}, err error) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	parser.SubcommandsOptional = true

	hashConf := &hashConfig{}
	parser.AddCommand(hashSubCmd, "Hashes block fields",
		"Prints the canonical serialization, hash and binary expansion of the given block fields", hashConf)

	verifyConf := &verifyConfig{}
	parser.AddCommand(verifySubCmd, "Checks a block against its predecessor",
		"Checks that a candidate block validly follows a previous block", verifyConf)

	auditConf := &auditConfig{}
	parser.AddCommand(auditSubCmd, "Checks a whole chain",
		"Checks every adjacent pair of blocks of a chain. The first block is trusted", auditConf)

	appendConf := &appendConfig{}
	parser.AddCommand(appendSubCmd, "Tries to append a block to a chain",
		"Replays a chain into a ledger and tries to append a candidate block to it", appendConf)

	_, err = parser.ParseArgs(args)

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.ShowSubsystems() {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	if err != nil {
		return "", nil, nil, err
	}

	if parser.Command.Active == nil {
		err = errors.New("a sub-command is required")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return "", nil, nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return "", nil, nil, err
	}

	switch parser.Command.Active.Name {
	case hashSubCmd:
		subConfig = hashConf
	case verifySubCmd:
		subConfig = verifyConf
	case auditSubCmd:
		subConfig = auditConf
	case appendSubCmd:
		subConfig = appendConf
	}

	return parser.Command.Active.Name, cfg, subConfig, nil
}
