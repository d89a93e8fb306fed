package model

// CloneChain returns a deep copy of chain.
func CloneChain(chain []*Block) []*Block {
	if chain == nil {
		return nil
	}
	clone := make([]*Block, len(chain))
	for i, block := range chain {
		clone[i] = block.Clone()
	}
	return clone
}
