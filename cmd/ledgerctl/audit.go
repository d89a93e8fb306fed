package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/powledger/domain/ledger"
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
)

func audit(conf *auditConfig, params *ledgerconfig.Params, out io.Writer) error {
	chain, err := readChain(conf.Chain)
	if err != nil {
		return err
	}

	auditor, err := ledger.New(params)
	if err != nil {
		return err
	}

	err = auditor.ValidateChain(chain)
	if err != nil {
		if ruleerrors.IsRuleError(err) {
			fmt.Fprintf(out, "chain of %d blocks is invalid: %s\n", len(chain), err)
			if conf.Dump {
				dumpFailingBlock(out, chain, auditor)
			}
		}
		return err
	}

	fmt.Fprintf(out, "chain of %d blocks is valid\n", len(chain))
	return nil
}

// dumpFailingBlock dumps the first block that doesn't validly follow its
// predecessor.
func dumpFailingBlock(out io.Writer, chain []*model.Block, auditor *ledger.Ledger) {
	for i := 1; i < len(chain); i++ {
		isValid, err := auditor.IsBlockValid(chain[i], chain[i-1])
		if err != nil || !isValid {
			fmt.Fprintf(out, "block at index %d: %s", i, spew.Sdump(chain[i]))
			return
		}
	}
}
