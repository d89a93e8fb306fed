package hashing

import (
	"crypto/sha256"
	"hash"

	"github.com/pkg/errors"
)

// HashSize is the size of a block digest in bytes.
const HashSize = sha256.Size

// HashWriter is used to incrementally hash data without concatenating all of
// the data to a single buffer. It exposes an io.Writer api and a Finalize
// function to get the resulting digest.
type HashWriter struct {
	hash.Hash
}

// NewBlockHashWriter returns a new HashWriter for block digests.
func NewBlockHashWriter() HashWriter {
	return HashWriter{sha256.New()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting digest
func (h HashWriter) Finalize() [HashSize]byte {
	var sum [HashSize]byte
	copy(sum[:], h.Sum(sum[:0]))
	return sum
}
