package hashing

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/pkg/errors"
)

// canonicalRecord is the exact shape that gets hashed. The field order is
// part of the hash and must not change.
type canonicalRecord struct {
	ID           uint64 `json:"id"`
	PreviousHash string `json:"previous_hash"`
	Data         string `json:"data"`
	Timestamp    int64  `json:"timestamp"`
	Nonce        uint64 `json:"nonce"`
}

// SerializeCanonical returns the bytes that ComputeHash feeds into the hash
// function: compact JSON of the five hashed fields, without HTML escaping.
// Invalid UTF-8 in previousHash or data is replaced with U+FFFD, so callers
// that need distinct inputs to hash differently must reject it first.
func SerializeCanonical(id uint64, timestamp int64, previousHash string, data string, nonce uint64) []byte {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(canonicalRecord{
		ID:           id,
		PreviousHash: previousHash,
		Data:         data,
		Timestamp:    timestamp,
		Nonce:        nonce,
	})
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. a record of strings and integers always encodes"))
	}

	// Encode terminates every value with a newline
	return bytes.TrimSuffix(buffer.Bytes(), []byte{'\n'})
}

// ComputeHash returns the SHA-256 digest of the canonical serialization of
// the given block fields.
func ComputeHash(id uint64, timestamp int64, previousHash string, data string, nonce uint64) [HashSize]byte {
	writer := NewBlockHashWriter()
	writer.InfallibleWrite(SerializeCanonical(id, timestamp, previousHash, data, nonce))
	return writer.Finalize()
}

// HashString returns the lowercase hex encoding of ComputeHash over the
// given fields. This is the value stored in a block's Hash field.
func HashString(id uint64, timestamp int64, previousHash string, data string, nonce uint64) string {
	digest := ComputeHash(id, timestamp, previousHash, data, nonce)
	return hex.EncodeToString(digest[:])
}

// BlockHash recomputes the hash of block from its own fields. The block's
// stored Hash is ignored.
func BlockHash(block *model.Block) string {
	return HashString(block.ID, block.Timestamp, block.PreviousHash, block.Data, block.Nonce)
}

// DecodeHash decodes a hex encoded block hash into its raw bytes.
func DecodeHash(hashString string) ([]byte, error) {
	raw, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.Wrapf(err, "hash %q is not valid hex", hashString)
	}
	return raw, nil
}
