package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/kaspanet/powledger/domain/ledger/ruleerrors"
	"github.com/kaspanet/powledger/domain/ledger/utils/testutils"
	"github.com/kaspanet/powledger/domain/ledgerconfig"
	"github.com/pkg/errors"
)

func writeJSONForTest(t *testing.T, dir string, name string, value interface{}) string {
	content, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("json.Marshal: %s", err)
	}
	path := filepath.Join(dir, name)
	err = ioutil.WriteFile(path, content, 0600)
	if err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	return path
}

func chainForTest(length int) []*model.Block {
	params := &ledgerconfig.SimnetParams
	return testutils.BuildChain(testutils.GenesisBlock(params), length, params)
}

func TestParseCommandLine(t *testing.T) {
	subCmd, cfg, subConfig, err := parseCommandLine([]string{"--simnet", "audit", "--chain", "chain.json"})
	if err != nil {
		t.Fatalf("parseCommandLine: %s", err)
	}
	if subCmd != auditSubCmd {
		t.Fatalf("expected sub-command %s, got %s", auditSubCmd, subCmd)
	}
	if cfg.ActiveParams.Name != ledgerconfig.SimnetParams.Name {
		t.Fatalf("expected simnet params, got %s", cfg.ActiveParams.Name)
	}
	if subConfig.(*auditConfig).Chain != "chain.json" {
		t.Fatalf("unexpected audit config %+v", subConfig)
	}

	subCmd, cfg, _, err = parseCommandLine([]string{"hash", "--prev", "genesis", "--difficulty-prefix", "000"})
	if err != nil {
		t.Fatalf("parseCommandLine: %s", err)
	}
	if subCmd != hashSubCmd || cfg.ActiveParams.DifficultyPrefix != "000" {
		t.Fatalf("global flags after the sub-command weren't applied: %s %+v", subCmd, cfg.ActiveParams)
	}

	_, _, _, err = parseCommandLine([]string{})
	if err == nil {
		t.Fatalf("parseCommandLine unexpectedly succeeded without a sub-command")
	}
	_, _, _, err = parseCommandLine([]string{"verify", "--block", "block.json"})
	if err == nil {
		t.Fatalf("parseCommandLine unexpectedly succeeded without a required flag")
	}
}

func TestHashFields(t *testing.T) {
	conf := &hashConfig{
		ID:           1,
		PreviousHash: ledgerconfig.GenesisHash,
		Data:         "hello",
		Timestamp:    1600000000,
		Nonce:        70655,
	}
	var out bytes.Buffer
	err := hashFields(conf, &ledgerconfig.MainnetParams, &out)
	if err != nil {
		t.Fatalf("hashFields: %+v", err)
	}

	for _, expected := range []string{
		"hash:      000063fda7d01feef35cc399c5fe17b9d00c9b0185738d3d92ae92b35da8ba83\n",
		"binary:    00110001111111101101001111101000...\n",
		"meets difficulty \"00\": true\n",
	} {
		if !strings.Contains(out.String(), expected) {
			t.Fatalf("expected %q in the output:\n%s", expected, out.String())
		}
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	chain := chainForTest(1)
	previousPath := writeJSONForTest(t, dir, "previous.json", chain[0])
	validPath := writeJSONForTest(t, dir, "valid.json", chain[1])

	tampered := chain[1].Clone()
	tampered.Data = "tampered"
	tamperedPath := writeJSONForTest(t, dir, "tampered.json", tampered)

	malformed := chain[1].Clone()
	malformed.Hash = "xyz"
	malformedPath := writeJSONForTest(t, dir, "malformed.json", malformed)

	params := &ledgerconfig.SimnetParams

	var out bytes.Buffer
	err := verify(&verifyConfig{Block: validPath, Previous: previousPath, Dump: true}, params, &out)
	if err != nil {
		t.Fatalf("verify: %+v", err)
	}
	if !strings.Contains(out.String(), "is a valid successor of") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	err = verify(&verifyConfig{Block: tamperedPath, Previous: previousPath}, params, &out)
	if !errors.Is(err, ruleerrors.ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
	if !strings.Contains(out.String(), "is invalid: invalid hash") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	err = verify(&verifyConfig{Block: malformedPath, Previous: previousPath}, params, &out)
	if !ruleerrors.IsMalformedHashError(err) {
		t.Fatalf("expected a malformed hash error, got %v", err)
	}

	err = verify(&verifyConfig{Block: filepath.Join(dir, "missing.json"), Previous: previousPath}, params, &out)
	if err == nil {
		t.Fatalf("verify unexpectedly succeeded with a missing file")
	}

	err = verify(&verifyConfig{Block: stdinPath, Previous: stdinPath}, params, &out)
	if err == nil {
		t.Fatalf("verify unexpectedly read both blocks from stdin")
	}
}

func TestAudit(t *testing.T) {
	dir := t.TempDir()
	chain := chainForTest(4)
	validPath := writeJSONForTest(t, dir, "valid.json", chain)

	tampered := model.CloneChain(chain)
	tampered[3].PreviousHash = tampered[1].Hash
	tamperedPath := writeJSONForTest(t, dir, "tampered.json", tampered)

	params := &ledgerconfig.SimnetParams

	var out bytes.Buffer
	err := audit(&auditConfig{Chain: validPath}, params, &out)
	if err != nil {
		t.Fatalf("audit: %+v", err)
	}
	if out.String() != "chain of 5 blocks is valid\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	err = audit(&auditConfig{Chain: tamperedPath, Dump: true}, params, &out)
	if !errors.Is(err, ruleerrors.ErrWrongPreviousHash) {
		t.Fatalf("expected ErrWrongPreviousHash, got %v", err)
	}
	if !strings.Contains(out.String(), "block at index 3") {
		t.Fatalf("expected the failing index in the output:\n%s", out.String())
	}

	// The chain was solved for simnet, it doesn't meet the mainnet difficulty
	err = audit(&auditConfig{Chain: validPath}, &ledgerconfig.MainnetParams, &out)
	if !errors.Is(err, ruleerrors.ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}

	notAChain := writeJSONForTest(t, dir, "block.json", chain[0])
	err = audit(&auditConfig{Chain: notAChain}, params, &out)
	if err == nil {
		t.Fatalf("audit unexpectedly accepted a file with a single block object")
	}
}

func TestAppendBlock(t *testing.T) {
	dir := t.TempDir()
	params := &ledgerconfig.SimnetParams
	chain := chainForTest(3)
	chainPath := writeJSONForTest(t, dir, "chain.json", chain)

	candidate := testutils.NextBlock(chain[3], "candidate", params)
	candidatePath := writeJSONForTest(t, dir, "candidate.json", candidate)

	var out bytes.Buffer
	err := appendBlock(&appendConfig{Chain: chainPath, Block: candidatePath, PrintChain: true}, params, &out)
	if err != nil {
		t.Fatalf("appendBlock: %+v", err)
	}
	if !strings.HasPrefix(out.String(), "accepted: block 4") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	// Everything after the result line is the printed chain
	printed := out.String()[strings.Index(out.String(), "\n")+1:]
	var resultingChain []*model.Block
	err = json.Unmarshal([]byte(printed), &resultingChain)
	if err != nil {
		t.Fatalf("the printed chain is not valid JSON: %s", err)
	}
	if len(resultingChain) != 5 || !resultingChain[4].Equal(candidate) {
		t.Fatalf("unexpected resulting chain of %d blocks", len(resultingChain))
	}

	// The candidate doesn't follow the second block
	shortChainPath := writeJSONForTest(t, dir, "short.json", chain[:2])
	out.Reset()
	err = appendBlock(&appendConfig{Chain: shortChainPath, Block: candidatePath}, params, &out)
	if !errors.Is(err, ruleerrors.ErrWrongPreviousHash) {
		t.Fatalf("expected ErrWrongPreviousHash, got %v", err)
	}
	if !strings.HasPrefix(out.String(), "rejected (wrong previous hash): ledger length 2") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	emptyPath := writeJSONForTest(t, dir, "empty.json", []*model.Block{})
	err = appendBlock(&appendConfig{Chain: emptyPath, Block: candidatePath}, params, &out)
	if err == nil {
		t.Fatalf("appendBlock unexpectedly accepted an empty chain")
	}

	broken := model.CloneChain(chain)
	broken[2].Data = "tampered"
	brokenPath := writeJSONForTest(t, dir, "broken.json", broken)
	err = appendBlock(&appendConfig{Chain: brokenPath, Block: candidatePath}, params, &out)
	if !errors.Is(err, ruleerrors.ErrInvalidHash) {
		t.Fatalf("expected the replay to fail with ErrInvalidHash, got %v", err)
	}
}
