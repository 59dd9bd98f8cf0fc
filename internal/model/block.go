package model

// Block represents a confirmed chain block mirrored in the chain schema.
type Block struct {
	Number int64
	Hash   string
}
