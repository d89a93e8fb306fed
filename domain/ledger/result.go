package ledger

import (
	"fmt"

	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
)

// AddBlockStatus is the outcome of TryAddBlock
type AddBlockStatus uint8

const (
	// StatusAccepted means the block was appended as the new tip
	StatusAccepted AddBlockStatus = iota

	// StatusRejected means the block violated a rule and the ledger is unchanged
	StatusRejected
)

var addBlockStatusStrings = map[AddBlockStatus]string{
	StatusAccepted: "accepted",
	StatusRejected: "rejected",
}

func (s AddBlockStatus) String() string {
	if str, ok := addBlockStatusStrings[s]; ok {
		return str
	}
	return fmt.Sprintf("unknown status (%d)", uint8(s))
}

// AddBlockResult describes what TryAddBlock did with a candidate block
type AddBlockResult struct {
	Status AddBlockStatus

	// Reason is the rule violation that caused a rejection. It wraps one of
	// the ruleerrors.Err* values and is nil for accepted blocks.
	Reason error

	// Tip is the tip of the ledger after the call
	Tip *model.Block

	// Length is the number of blocks in the ledger after the call
	Length int
}

// IsAccepted returns whether the candidate block was appended
func (r *AddBlockResult) IsAccepted() bool {
	return r.Status == StatusAccepted
}

func (r *AddBlockResult) String() string {
	if r.IsAccepted() {
		return fmt.Sprintf("%s: %s, ledger length %d", r.Status, r.Tip, r.Length)
	}
	return fmt.Sprintf("%s (%s): ledger length %d", r.Status, ruleerrors.Reason(r.Reason), r.Length)
}
