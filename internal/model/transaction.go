package model

// Transaction represents a chain transaction row.
// CustomType is nil until the transaction has been classified.
type Transaction struct {
	BlockNumber int64
	Number      int64
	TxID        string
	CustomType  *CustomType
}

// BlockTransaction joins a transaction with its block; it is read-only.
type BlockTransaction struct {
	BlockNumber       int64
	BlockHash         string
	TransactionNumber int64
	TransactionID     string
}
