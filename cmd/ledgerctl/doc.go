/*
Ledgerctl inspects and extends proof-of-work ledgers stored as JSON.

Blocks are JSON objects with the fields id, hash, previous_hash, timestamp,
data and nonce. A chain is a JSON array of blocks whose first block is trusted.

Usage:

	ledgerctl [OPTIONS] <hash | verify | audit | append> [COMMAND OPTIONS]

Examples:

	ledgerctl hash --id 1 --prev genesis --data hello --timestamp 1600000000 --nonce 7
	ledgerctl verify --block candidate.json --previous tip.json
	ledgerctl --simnet audit --chain chain.json --dump
	ledgerctl append --chain chain.json --block candidate.json --print-chain

The default params require the binary expansion of every block hash to start
with "00". Use --simnet or --difficulty-prefix to change that.

For an up-to-date help message:

	ledgerctl --help
*/
package main
