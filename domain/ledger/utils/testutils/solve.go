package testutils

import (
	"math"

	"github.com/kaspanet/powledger/domain/ledger/hashing"
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

// SolveBlock increments block.Nonce, starting from its current value, until
// the block's hash meets the difficulty of params, and stores that hash in
// block.Hash. It is meant for building test fixtures at low difficulty.
func SolveBlock(block *model.Block, params *ledgerconfig.Params) {
	for nonce := block.Nonce; nonce < math.MaxUint64; nonce++ {
		digest := hashing.ComputeHash(block.ID, block.Timestamp, block.PreviousHash, block.Data, nonce)
		if hashing.MeetsDifficulty(digest[:], params.DifficultyPrefix, params.PadBinaryExpansion) {
			block.Nonce = nonce
			block.Hash = hashing.BlockHash(block)
			return
		}
	}

	panic(errors.New("went over all the nonce space and couldn't find a single one that gives a valid block"))
}

// NextBlock returns a solved block that validly follows previous.
func NextBlock(previous *model.Block, data string, params *ledgerconfig.Params) *model.Block {
	block := &model.Block{
		ID:           previous.ID + 1,
		PreviousHash: previous.Hash,
		Timestamp:    previous.Timestamp + 60,
		Data:         data,
	}
	SolveBlock(block, params)
	return block
}

// BuildChain returns root followed by length solved blocks.
func BuildChain(root *model.Block, length int, params *ledgerconfig.Params) []*model.Block {
	chain := make([]*model.Block, 0, length+1)
	chain = append(chain, root)
	for i := 0; i < length; i++ {
		chain = append(chain, NextBlock(chain[len(chain)-1], "block data", params))
	}
	return chain
}

// GenesisBlock returns the genesis block of params with a fixed timestamp.
func GenesisBlock(params *ledgerconfig.Params) *model.Block {
	return &model.Block{
		ID:           0,
		Hash:         params.GenesisHash,
		PreviousHash: ledgerconfig.GenesisPreviousHash,
		Timestamp:    1600000000,
		Data:         params.GenesisData,
		Nonce:        params.GenesisNonce,
	}
}
