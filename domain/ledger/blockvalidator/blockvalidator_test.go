package blockvalidator

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledger/utils/testutils"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

// blockOneHash is the hash of blockOne's fields with nonce 70655, the first
// nonce whose unpadded binary expansion starts with "00".
const blockOneHash = "000063fda7d01feef35cc399c5fe17b9d00c9b0185738d3d92ae92b35da8ba83"

// hexZeroHash is the hash of blockOne's fields with nonce 73. Its hex starts
// with "00" but its unpadded binary expansion starts with "0101".
const hexZeroHash = "002b94178cc95842e4ba13b6e6e203f801281fc7ab3e70d0bdb74ad4e483c768"

func blockOne() *model.Block {
	return &model.Block{
		ID:           1,
		Hash:         blockOneHash,
		PreviousHash: ledgerconfig.GenesisHash,
		Timestamp:    1600000000,
		Data:         "hello",
		Nonce:        70655,
	}
}

func TestValidateBlock(t *testing.T) {
	genesis := testutils.GenesisBlock(&ledgerconfig.MainnetParams)

	tests := []struct {
		name          string
		candidate     func() *model.Block
		expectedError error
	}{
		{
			name:          "valid block",
			candidate:     blockOne,
			expectedError: nil,
		},
		{
			name: "wrong previous hash",
			candidate: func() *model.Block {
				block := blockOne()
				block.PreviousHash = "genesis"
				return block
			},
			expectedError: ruleerrors.ErrWrongPreviousHash,
		},
		{
			name: "wrong previous hash is checked before the hash is decoded",
			candidate: func() *model.Block {
				block := blockOne()
				block.PreviousHash = "genesis"
				block.Hash = "not hex"
				return block
			},
			expectedError: ruleerrors.ErrWrongPreviousHash,
		},
		{
			name: "hash doesn't meet the difficulty",
			candidate: func() *model.Block {
				block := blockOne()
				block.Nonce = 0
				block.Hash = "19eca99d4dded0cc3a4890897adf6cd6eb4d5eb4803c1b3df603c8b5cdb91c96"
				return block
			},
			expectedError: ruleerrors.ErrInvalidDifficulty,
		},
		{
			name: "a leading zero byte isn't enough",
			candidate: func() *model.Block {
				block := blockOne()
				block.Nonce = 73
				block.Hash = hexZeroHash
				return block
			},
			expectedError: ruleerrors.ErrInvalidDifficulty,
		},
		{
			name: "id doesn't follow the previous id",
			candidate: func() *model.Block {
				block := blockOne()
				block.ID = 2
				return block
			},
			expectedError: ruleerrors.ErrIDMismatch,
		},
		{
			name: "id is checked before the hash is recomputed",
			candidate: func() *model.Block {
				block := blockOne()
				block.ID = 5
				block.Data = "tampered"
				return block
			},
			expectedError: ruleerrors.ErrIDMismatch,
		},
		{
			name: "tampered data",
			candidate: func() *model.Block {
				block := blockOne()
				block.Data = "hellO"
				return block
			},
			expectedError: ruleerrors.ErrInvalidHash,
		},
		{
			name: "tampered timestamp",
			candidate: func() *model.Block {
				block := blockOne()
				block.Timestamp++
				return block
			},
			expectedError: ruleerrors.ErrInvalidHash,
		},
		{
			name: "tampered nonce",
			candidate: func() *model.Block {
				block := blockOne()
				block.Nonce++
				return block
			},
			expectedError: ruleerrors.ErrInvalidHash,
		},
		{
			name: "uppercase hash",
			candidate: func() *model.Block {
				block := blockOne()
				block.Hash = "000063FDA7D01FEEF35CC399C5FE17B9D00C9B0185738D3D92AE92B35DA8BA83"
				return block
			},
			expectedError: ruleerrors.ErrInvalidHash,
		},
	}

	validator := New(&ledgerconfig.MainnetParams)
	for _, test := range tests {
		candidate := test.candidate()
		err := validator.ValidateBlock(candidate, genesis)
		if test.expectedError == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %+v for block %s", test.name, err, spew.Sdump(candidate))
			}
		} else if !errors.Is(err, test.expectedError) {
			t.Errorf("%s: expected error %s, got %v for block %s", test.name, test.expectedError, err,
				spew.Sdump(candidate))
		}

		isValid, err := validator.IsBlockValid(candidate, genesis)
		if err != nil {
			t.Errorf("%s: IsBlockValid unexpectedly returned an error: %+v", test.name, err)
		}
		if isValid != (test.expectedError == nil) {
			t.Errorf("%s: IsBlockValid returned %t", test.name, isValid)
		}
	}
}

func TestMalformedHash(t *testing.T) {
	genesis := testutils.GenesisBlock(&ledgerconfig.MainnetParams)
	validator := New(&ledgerconfig.MainnetParams)

	for _, malformedHash := range []string{"xyz", "000", "0000f816 a87f"} {
		candidate := blockOne()
		candidate.Hash = malformedHash

		err := validator.ValidateBlock(candidate, genesis)
		if !ruleerrors.IsMalformedHashError(err) {
			t.Fatalf("ValidateBlock: expected a malformed hash error for %q, got %v", malformedHash, err)
		}
		if ruleerrors.IsRuleError(err) {
			t.Fatalf("ValidateBlock: a malformed hash was reported as a rule error")
		}

		isValid, err := validator.IsBlockValid(candidate, genesis)
		if isValid {
			t.Fatalf("IsBlockValid: a block with hash %q is unexpectedly valid", malformedHash)
		}
		if !ruleerrors.IsMalformedHashError(err) {
			t.Fatalf("IsBlockValid: expected a malformed hash error for %q, got %v", malformedHash, err)
		}
	}
}

func TestInvalidUTF8(t *testing.T) {
	params := &ledgerconfig.SimnetParams
	validator := New(params)
	genesis := testutils.GenesisBlock(params)

	// Both payloads serialize to "pay \ufffd", so they share a hash
	stored := testutils.NextBlock(genesis, "pay \xff", params)
	tampered := stored.Clone()
	tampered.Data = "pay \xfe"

	for _, candidate := range []*model.Block{stored, tampered} {
		err := validator.ValidateBlock(candidate, genesis)
		if !ruleerrors.IsInvalidUTF8Error(err) {
			t.Fatalf("expected an invalid UTF-8 error for data %q, got %v", candidate.Data, err)
		}
		if ruleerrors.IsRuleError(err) {
			t.Fatalf("invalid UTF-8 was reported as a rule error")
		}
		var invalidUTF8Error *ruleerrors.InvalidUTF8Error
		if !errors.As(err, &invalidUTF8Error) || invalidUTF8Error.Field != "data" || invalidUTF8Error.BlockID != 1 {
			t.Fatalf("unexpected error fields: %+v", err)
		}

		isValid, err := validator.IsBlockValid(candidate, genesis)
		if isValid || !ruleerrors.IsInvalidUTF8Error(err) {
			t.Fatalf("IsBlockValid: expected false and an invalid UTF-8 error, got %t, %v", isValid, err)
		}
	}

	// The replacement character itself is valid text and matches the hash
	canonical := stored.Clone()
	canonical.Data = "pay \ufffd"
	if err := validator.ValidateBlock(canonical, genesis); err != nil {
		t.Fatalf("ValidateBlock: %+v\n%s", err, spew.Sdump(canonical))
	}

	badPreviousHash := stored.Clone()
	badPreviousHash.Data = "pay"
	badPreviousHash.PreviousHash = genesis.Hash[:10] + "\xff"
	err := validator.ValidateBlock(badPreviousHash, genesis)
	var invalidUTF8Error *ruleerrors.InvalidUTF8Error
	if !errors.As(err, &invalidUTF8Error) || invalidUTF8Error.Field != "previous hash" {
		t.Fatalf("expected an invalid UTF-8 error in the previous hash, got %v", err)
	}
}

func TestNilBlocks(t *testing.T) {
	validator := New(&ledgerconfig.MainnetParams)
	genesis := testutils.GenesisBlock(&ledgerconfig.MainnetParams)

	if err := validator.ValidateBlock(nil, genesis); !errors.Is(err, ruleerrors.ErrNilBlock) {
		t.Fatalf("expected ErrNilBlock for a nil candidate, got %v", err)
	}
	if err := validator.ValidateBlock(blockOne(), nil); !errors.Is(err, ruleerrors.ErrNilBlock) {
		t.Fatalf("expected ErrNilBlock for a nil previous block, got %v", err)
	}
}

func TestIDOverflow(t *testing.T) {
	params := ledgerconfig.MainnetParams.WithDifficultyPrefix("")
	validator := New(params)

	previous := &model.Block{ID: math.MaxUint64, Hash: "00"}
	candidate := &model.Block{ID: 0, PreviousHash: "00"}
	candidate.Hash = "ff"

	err := validator.ValidateBlock(candidate, previous)
	if !errors.Is(err, ruleerrors.ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch after the maximal id, got %v", err)
	}
}

func TestDifficultyPrefixFromParams(t *testing.T) {
	genesis := testutils.GenesisBlock(&ledgerconfig.MainnetParams)
	candidate := blockOne()
	candidate.Nonce = 73
	candidate.Hash = hexZeroHash

	tests := []struct {
		name    string
		params  *ledgerconfig.Params
		isValid bool
	}{
		{"mainnet", &ledgerconfig.MainnetParams, false},
		{"simnet", &ledgerconfig.SimnetParams, true},
		{"empty prefix", ledgerconfig.MainnetParams.WithDifficultyPrefix(""), true},
		{"padded", func() *ledgerconfig.Params {
			params := ledgerconfig.MainnetParams
			params.PadBinaryExpansion = true
			return &params
		}(), true},
	}

	for _, test := range tests {
		isValid, err := New(test.params).IsBlockValid(candidate, genesis)
		if err != nil {
			t.Fatalf("%s: IsBlockValid: %+v", test.name, err)
		}
		if isValid != test.isValid {
			t.Errorf("%s: expected %t, got %t", test.name, test.isValid, isValid)
		}
	}
}

func TestSolvedBlocksAreValid(t *testing.T) {
	params := &ledgerconfig.SimnetParams
	validator := New(params)
	chain := testutils.BuildChain(testutils.GenesisBlock(params), 5, params)

	for i := 1; i < len(chain); i++ {
		if err := validator.ValidateBlock(chain[i], chain[i-1]); err != nil {
			t.Fatalf("block %d: %+v\n%s", i, err, spew.Sdump(chain[i]))
		}
	}
}
