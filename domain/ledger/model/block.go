package model

import "fmt"

// Block is a single record of the ledger. Blocks are values: copying a Block
// copies all of its state, and no Block references another.
//
// The field order matches the block's wire and storage shape.
type Block struct {
	ID           uint64 `json:"id"`
	Hash         string `json:"hash"`
	PreviousHash string `json:"previous_hash"`
	Timestamp    int64  `json:"timestamp"`
	Data         string `json:"data"`
	Nonce        uint64 `json:"nonce"`
}

// Clone returns a copy of the block
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Equal returns whether b equals other
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return *b == *other
}

func (b *Block) String() string {
	if b == nil {
		return "<nil block>"
	}
	shortHash := b.Hash
	if len(shortHash) > 16 {
		shortHash = shortHash[:16]
	}
	return fmt.Sprintf("block %d (%s)", b.ID, shortHash)
}
