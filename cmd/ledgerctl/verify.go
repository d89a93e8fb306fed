package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/powledger/domain/ledger/blockvalidator"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

func verify(conf *verifyConfig, params *ledgerconfig.Params, out io.Writer) error {
	if conf.Block == stdinPath && conf.Previous == stdinPath {
		return errors.New("only one of --block and --previous can be read from stdin")
	}
	candidate, err := readBlock(conf.Block)
	if err != nil {
		return err
	}
	previous, err := readBlock(conf.Previous)
	if err != nil {
		return err
	}

	if conf.Dump {
		fmt.Fprintf(out, "previous: %s", spew.Sdump(previous))
		fmt.Fprintf(out, "candidate: %s", spew.Sdump(candidate))
	}

	err = blockvalidator.New(params).ValidateBlock(candidate, previous)
	if err != nil {
		if ruleerrors.IsRuleError(err) {
			fmt.Fprintf(out, "%s is invalid: %s\n", candidate, ruleerrors.Reason(err))
		}
		return err
	}

	fmt.Fprintf(out, "%s is a valid successor of %s\n", candidate, previous)
	return nil
}
