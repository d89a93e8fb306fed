package ledgerconfig

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultDifficultyPrefix is the binary prefix a block hash must start with
// on the reference chain.
const DefaultDifficultyPrefix = "00"

// Params defines a ledger by its parameters. Blocks that are valid under one
// Params may be invalid under another.
type Params struct {
	// Name defines a human-readable identifier for the parameter set.
	Name string

	// DifficultyPrefix is the string the binary expansion of a block hash
	// must start with. It may only contain the characters '0' and '1'.
	DifficultyPrefix string

	// PadBinaryExpansion renders every hash byte as exactly eight binary
	// digits when checking the difficulty prefix. The reference chain
	// renders bytes without padding (3 becomes "11"), so enabling this
	// produces a chain that is incompatible with it.
	PadBinaryExpansion bool

	// GenesisHash is the trusted hash stored in the genesis block.
	GenesisHash string

	// GenesisData is the payload of the genesis block.
	GenesisData string

	// GenesisNonce is the nonce of the genesis block.
	GenesisNonce uint64
}

// Validate checks that the params describe a usable ledger.
func (p *Params) Validate() error {
	err := ValidateDifficultyPrefix(p.DifficultyPrefix)
	if err != nil {
		return err
	}
	if p.GenesisHash == "" {
		return errors.Errorf("params %s: genesis hash is empty", p.Name)
	}
	return nil
}

// ValidateDifficultyPrefix returns an error if prefix contains anything other
// than binary digits.
func ValidateDifficultyPrefix(prefix string) error {
	if strings.Trim(prefix, "01") != "" {
		return errors.Errorf("difficulty prefix %q must only contain the digits 0 and 1", prefix)
	}
	return nil
}

// WithDifficultyPrefix returns a copy of p that requires the given prefix.
func (p Params) WithDifficultyPrefix(prefix string) *Params {
	p.DifficultyPrefix = prefix
	return &p
}

// MainnetParams are the parameters of the reference chain.
var MainnetParams = Params{
	Name:               "mainnet",
	DifficultyPrefix:   DefaultDifficultyPrefix,
	PadBinaryExpansion: false,
	GenesisHash:        GenesisHash,
	GenesisData:        GenesisData,
	GenesisNonce:       GenesisNonce,
}

// SimnetParams keep the reference genesis but only require a single leading
// zero digit, which makes blocks cheap to produce in tests and simulations.
var SimnetParams = Params{
	Name:               "simnet",
	DifficultyPrefix:   "0",
	PadBinaryExpansion: false,
	GenesisHash:        GenesisHash,
	GenesisData:        GenesisData,
	GenesisNonce:       GenesisNonce,
}
