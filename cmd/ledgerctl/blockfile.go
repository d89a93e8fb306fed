package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/kaspanet/powledger/domain/ledger/model"
	"github.com/pkg/errors"
)

const stdinPath = "-"

func readFile(path string) ([]byte, error) {
	var reader io.Reader = os.Stdin
	if path != stdinPath {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer file.Close()
		reader = file
	}

	content, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", path)
	}
	return content, nil
}

func readBlock(path string) (*model.Block, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	block := &model.Block{}
	err = json.Unmarshal(content, block)
	if err != nil {
		return nil, errors.Wrapf(err, "%s doesn't contain a block", path)
	}
	return block, nil
}

func readChain(path string) ([]*model.Block, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var chain []*model.Block
	err = json.Unmarshal(content, &chain)
	if err != nil {
		return nil, errors.Wrapf(err, "%s doesn't contain an array of blocks", path)
	}
	return chain, nil
}

func writeChain(writer io.Writer, chain []*model.Block) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return errors.WithStack(encoder.Encode(chain))
}
