package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/kaspanet/powledger/domain/ledger/hashing"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
)

// shownBinaryDigits is how much of the binary expansion gets printed
const shownBinaryDigits = 32

func hashFields(conf *hashConfig, params *ledgerconfig.Params, out io.Writer) error {
	serialized := hashing.SerializeCanonical(conf.ID, conf.Timestamp, conf.PreviousHash, conf.Data, conf.Nonce)
	digest := hashing.ComputeHash(conf.ID, conf.Timestamp, conf.PreviousHash, conf.Data, conf.Nonce)

	binary := hashing.BinaryRepresentation(digest[:], params.PadBinaryExpansion)
	if len(binary) > shownBinaryDigits {
		binary = binary[:shownBinaryDigits] + "..."
	}

	fmt.Fprintf(out, "canonical: %s\n", serialized)
	fmt.Fprintf(out, "hash:      %s\n", hex.EncodeToString(digest[:]))
	fmt.Fprintf(out, "binary:    %s\n", binary)
	fmt.Fprintf(out, "meets difficulty %q: %t\n", params.DifficultyPrefix,
		hashing.MeetsDifficulty(digest[:], params.DifficultyPrefix, params.PadBinaryExpansion))
	return nil
}
