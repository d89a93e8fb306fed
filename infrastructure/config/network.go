package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the ledger parameter configuration, that is which params
// are selected and how they are overridden.
type NetworkFlags struct {
	Simnet           bool    `long:"simnet" description:"Use the simulation params, which only require a single leading zero digit"`
	DifficultyPrefix *string `long:"difficulty-prefix" description:"Binary prefix every block hash must start with (overrides the selected params)"`
	PaddedBinary     bool    `long:"padded-binary" description:"Expand every hash byte to 8 binary digits when checking difficulty. Chains built this way are incompatible with the reference chain"`

	ActiveParams *ledgerconfig.Params
}

// ResolveNetwork sets ActiveParams according to the parsed flags. The
// selected params are copied, so overrides never leak into the package
// level params.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	params := ledgerconfig.MainnetParams
	if networkFlags.Simnet {
		params = ledgerconfig.SimnetParams
	}

	if networkFlags.DifficultyPrefix != nil {
		params.Name = fmt.Sprintf("%s-prefix-%s", params.Name, *networkFlags.DifficultyPrefix)
		params.DifficultyPrefix = *networkFlags.DifficultyPrefix
	}
	if networkFlags.PaddedBinary {
		params.Name += "-padded"
		params.PadBinaryExpansion = true
	}

	err := params.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid ledger params")
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	networkFlags.ActiveParams = &params
	return nil
}
