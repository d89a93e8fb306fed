package model

// BlockValidator exposes a set of validation functions for blocks
type BlockValidator interface {
	// ValidateBlock returns nil if candidate is a valid successor of
	// previous, a wrapped RuleError naming the first violated rule, or a
	// different error if the candidate is malformed.
	ValidateBlock(candidate, previous *Block) error

	// IsBlockValid is ValidateBlock reduced to a boolean. Rule violations
	// yield false with a nil error. Malformed input is still returned as an
	// error.
	IsBlockValid(candidate, previous *Block) (bool, error)
}
