package ledger

import (
	"time"

	"github.com/kaspanet/powledger/domain/ledger/blockvalidator"
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

// Ledger is an ordered sequence of blocks that starts with a trusted genesis
// block. Blocks are only ever appended, and only by TryAddBlock.
//
// Ledger is not safe for concurrent use. A host that shares one between
// goroutines must serialize calls to TryAddBlock.
type Ledger struct {
	params    *ledgerconfig.Params
	validator model.BlockValidator
	blocks    []*model.Block

	// now is the clock used for the genesis timestamp
	now func() time.Time
}

// New returns a ledger for params that already contains the genesis block.
func New(params *ledgerconfig.Params) (*Ledger, error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}
	ledger := &Ledger{
		params:    params,
		validator: blockvalidator.New(params),
		now:       time.Now,
	}
	ledger.Genesis()
	return ledger, nil
}

// NewFromRoot returns a ledger whose first block is root instead of the
// genesis block of params. Like genesis, root is trusted and never
// validated. This lets a host replay a chain it received from elsewhere.
func NewFromRoot(params *ledgerconfig.Params, root *model.Block) (*Ledger, error) {
	if root == nil {
		return nil, errors.Wrap(ruleerrors.ErrNilBlock, "cannot seed a ledger from a nil root")
	}
	err := params.Validate()
	if err != nil {
		return nil, err
	}
	return &Ledger{
		params:    params,
		validator: blockvalidator.New(params),
		blocks:    []*model.Block{root.Clone()},
		now:       time.Now,
	}, nil
}

// init makes the zero value usable with the mainnet params
func (l *Ledger) init() {
	if l.params == nil {
		l.params = &ledgerconfig.MainnetParams
	}
	if l.validator == nil {
		l.validator = blockvalidator.New(l.params)
	}
	if l.now == nil {
		l.now = time.Now
	}
}

// Genesis resets the ledger to exactly one block: the genesis block. Its
// hash is the trusted constant from the params and its timestamp is the
// current time.
func (l *Ledger) Genesis() {
	l.init()
	genesis := &model.Block{
		ID:           0,
		Hash:         l.params.GenesisHash,
		PreviousHash: ledgerconfig.GenesisPreviousHash,
		Timestamp:    l.now().Unix(),
		Data:         l.params.GenesisData,
		Nonce:        l.params.GenesisNonce,
	}
	l.blocks = []*model.Block{genesis}
	log.Debugf("Created genesis block %s", genesis)
}

// TryAddBlock validates candidate against the current tip and appends it if
// it is valid. A rule violation is not an error: the returned result has
// StatusRejected and the reason, and the ledger is unchanged. An error is
// returned only for malformed input or when the ledger has no genesis block.
func (l *Ledger) TryAddBlock(candidate *model.Block) (*AddBlockResult, error) {
	if len(l.blocks) == 0 {
		return nil, errors.WithStack(ruleerrors.ErrLedgerNotInitialized)
	}
	l.init()

	tip := l.blocks[len(l.blocks)-1]
	err := l.validator.ValidateBlock(candidate, tip)
	if err != nil {
		if !ruleerrors.IsRuleError(err) {
			return nil, err
		}
		log.Errorf("Could not add block: %s", err)
		return &AddBlockResult{
			Status: StatusRejected,
			Reason: err,
			Tip:    tip.Clone(),
			Length: len(l.blocks),
		}, nil
	}

	accepted := candidate.Clone()
	l.blocks = append(l.blocks, accepted)
	log.Debugf("Added %s, ledger length is %d", accepted, len(l.blocks))
	return &AddBlockResult{
		Status: StatusAccepted,
		Tip:    accepted.Clone(),
		Length: len(l.blocks),
	}, nil
}

// IsBlockValid returns whether candidate is a valid successor of previous
// under the ledger's params. Neither block has to belong to the ledger.
func (l *Ledger) IsBlockValid(candidate, previous *model.Block) (bool, error) {
	l.init()
	return l.validator.IsBlockValid(candidate, previous)
}

// Tip returns a copy of the last block of the ledger
func (l *Ledger) Tip() (*model.Block, error) {
	if len(l.blocks) == 0 {
		return nil, errors.WithStack(ruleerrors.ErrLedgerNotInitialized)
	}
	return l.blocks[len(l.blocks)-1].Clone(), nil
}

// Blocks returns a copy of the blocks of the ledger, genesis first
func (l *Ledger) Blocks() []*model.Block {
	return model.CloneChain(l.blocks)
}

// Len returns the number of blocks in the ledger
func (l *Ledger) Len() int {
	return len(l.blocks)
}

// Params returns the params the ledger validates blocks with
func (l *Ledger) Params() *ledgerconfig.Params {
	l.init()
	return l.params
}
