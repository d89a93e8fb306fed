package ledger

import (
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/infrastructure/logger"
	"github.com/pkg/errors"
)

// ValidateChain checks every adjacent pair of chain, in order, and returns
// the first failure wrapped with the index of the offending block. The first
// block is trusted and never checked. The ledger's own blocks are not
// consulted, only its params.
func (l *Ledger) ValidateChain(chain []*model.Block) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateChain")
	defer onEnd()

	l.init()
	for i := 1; i < len(chain); i++ {
		if chain[i] == nil || chain[i-1] == nil {
			return errors.Wrapf(ruleerrors.ErrNilBlock, "chain has a nil block near index %d", i)
		}
		err := l.validator.ValidateBlock(chain[i], chain[i-1])
		if err != nil {
			return errors.Wrapf(err, "block at index %d", i)
		}
	}
	return nil
}

// IsChainValid is ValidateChain reduced to a boolean. Chains of length 0 and
// 1 are valid. Rule violations yield false with a nil error; malformed
// input and nil blocks are returned as errors.
func (l *Ledger) IsChainValid(chain []*model.Block) (bool, error) {
	err := l.ValidateChain(chain)
	if err == nil {
		return true, nil
	}
	if ruleerrors.IsRuleError(err) {
		log.Warnf("Chain is invalid: %s", err)
		return false, nil
	}
	return false, err
}
