package blockvalidator

import (
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
)

// blockValidator exposes a set of validation functions for blocks
type blockValidator struct {
	difficultyPrefix   string
	padBinaryExpansion bool
}

// New instantiates a new BlockValidator
func New(params *ledgerconfig.Params) model.BlockValidator {
	return &blockValidator{
		difficultyPrefix:   params.DifficultyPrefix,
		padBinaryExpansion: params.PadBinaryExpansion,
	}
}

// ValidateBlock checks candidate against previous. Malformed input is
// reported first. The rules are then checked in a fixed order and checking
// stops at the first violated rule: link integrity, difficulty, sequential
// id, hash self-consistency.
func (v *blockValidator) ValidateBlock(candidate, previous *model.Block) error {
	if candidate == nil || previous == nil {
		return ruleerrors.ErrNilBlock
	}

	err := v.checkTextFields(candidate)
	if err != nil {
		return err
	}

	err = v.checkPreviousHash(candidate, previous)
	if err != nil {
		return err
	}

	err = v.checkProofOfWork(candidate)
	if err != nil {
		return err
	}

	err = v.checkSequentialID(candidate, previous)
	if err != nil {
		return err
	}

	return v.checkHashConsistency(candidate)
}

func (v *blockValidator) IsBlockValid(candidate, previous *model.Block) (bool, error) {
	err := v.ValidateBlock(candidate, previous)
	if err == nil {
		return true, nil
	}
	if ruleerrors.IsRuleError(err) {
		return false, nil
	}
	return false, err
}
