package ledgerconfig

// GenesisPreviousHash is the sentinel stored as the previous hash of the
// genesis block, which has no real predecessor.
const GenesisPreviousHash = "genesis"

// GenesisData is the placeholder payload of the genesis block.
const GenesisData = "Data"

// GenesisNonce is the nonce of the genesis block.
const GenesisNonce uint64 = 1

// GenesisHash is the stored hash of the genesis block.
//
// This is a trust anchor, not a computed value: the genesis timestamp is
// taken from the wall clock when a ledger is created, so this hash is never
// re-derived from the genesis fields and is never checked against them.
// Both its hex prefix and its binary expansion satisfy the default
// difficulty prefix.
const GenesisHash = "0000f816a87f806bb0073dcf026a64fb40c946b5abee2573702828694d5b4c43"
