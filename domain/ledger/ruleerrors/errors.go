package ruleerrors

import "github.com/pkg/errors"

// ErrLedgerNotInitialized is returned when a ledger without a genesis block
// is asked to accept a block.
var ErrLedgerNotInitialized = errors.New("ledger is not initialized: it has no genesis block")

// ErrNilBlock is returned when a nil block is passed where a block is required.
var ErrNilBlock = errors.New("block is nil")
