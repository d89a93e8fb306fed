package blockvalidator

import (
	"math"
	"unicode/utf8"

	"github.com/kaspanet/powledger/domain/ledger/hashing"
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/pkg/errors"
)

// checkTextFields rejects text the canonical serialization can't represent
// faithfully. JSON encoding replaces invalid UTF-8 with U+FFFD, so two
// different payloads would share a hash.
func (v *blockValidator) checkTextFields(candidate *model.Block) error {
	textFields := []struct {
		name  string
		value string
	}{
		{"previous hash", candidate.PreviousHash},
		{"data", candidate.Data},
	}
	for _, field := range textFields {
		if !utf8.ValidString(field.value) {
			log.Errorf("block with id %d has invalid UTF-8 in its %s", candidate.ID, field.name)
			return ruleerrors.NewInvalidUTF8Error(candidate.ID, field.name, field.value)
		}
	}
	return nil
}

func (v *blockValidator) checkPreviousHash(candidate, previous *model.Block) error {
	if candidate.PreviousHash != previous.Hash {
		log.Warnf("block with id %d has wrong previous hash", candidate.ID)
		return errors.Wrapf(ruleerrors.ErrWrongPreviousHash, "block with id %d points to %s "+
			"instead of %s", candidate.ID, candidate.PreviousHash, previous.Hash)
	}
	return nil
}

// checkProofOfWork decodes the stored hash and checks its binary expansion
// against the difficulty prefix. A hash that isn't hex is reported as
// malformed input, not as a rule violation.
func (v *blockValidator) checkProofOfWork(candidate *model.Block) error {
	digest, err := hashing.DecodeHash(candidate.Hash)
	if err != nil {
		log.Errorf("block with id %d has a malformed hash: %s", candidate.ID, err)
		return ruleerrors.NewMalformedHashError(candidate.ID, candidate.Hash, err)
	}

	if !hashing.MeetsDifficulty(digest, v.difficultyPrefix, v.padBinaryExpansion) {
		log.Warnf("block with id %d has invalid difficulty", candidate.ID)
		return errors.Wrapf(ruleerrors.ErrInvalidDifficulty, "block with id %d has hash %s whose "+
			"binary expansion doesn't start with %q", candidate.ID, candidate.Hash, v.difficultyPrefix)
	}
	return nil
}

func (v *blockValidator) checkSequentialID(candidate, previous *model.Block) error {
	if previous.ID == math.MaxUint64 || candidate.ID != previous.ID+1 {
		log.Warnf("block with id %d has id mismatch: previous block has id %d", candidate.ID, previous.ID)
		return errors.Wrapf(ruleerrors.ErrIDMismatch, "block with id %d follows a block with id %d",
			candidate.ID, previous.ID)
	}
	return nil
}

// checkHashConsistency recomputes the candidate's hash from its own fields
func (v *blockValidator) checkHashConsistency(candidate *model.Block) error {
	expectedHash := hashing.BlockHash(candidate)
	if expectedHash != candidate.Hash {
		log.Warnf("block with id %d has invalid hash", candidate.ID)
		return errors.Wrapf(ruleerrors.ErrInvalidHash, "block with id %d stores hash %s but its "+
			"fields hash to %s", candidate.ID, candidate.Hash, expectedHash)
	}
	return nil
}
