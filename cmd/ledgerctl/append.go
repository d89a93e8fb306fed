package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/powledger/domain/ledger"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

// appendBlock plays the role of a host: it rebuilds a ledger from a chain it
// received, then hands it a candidate block and reports the decision.
func appendBlock(conf *appendConfig, params *ledgerconfig.Params, out io.Writer) error {
	chain, err := readChain(conf.Chain)
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return errors.Errorf("%s contains no blocks", conf.Chain)
	}
	candidate, err := readBlock(conf.Block)
	if err != nil {
		return err
	}

	host, err := ledger.NewFromRoot(params, chain[0])
	if err != nil {
		return err
	}
	for i, block := range chain[1:] {
		result, err := host.TryAddBlock(block)
		if err != nil {
			return errors.Wrapf(err, "block at index %d of %s", i+1, conf.Chain)
		}
		if !result.IsAccepted() {
			return errors.Wrapf(result.Reason, "block at index %d of %s was rejected", i+1, conf.Chain)
		}
	}
	log.Debugf("Replayed %d blocks from %s", host.Len(), conf.Chain)

	result, err := host.TryAddBlock(candidate)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", result)

	if conf.PrintChain {
		err = writeChain(out, host.Blocks())
		if err != nil {
			return err
		}
	}

	if !result.IsAccepted() {
		return result.Reason
	}
	return nil
}
