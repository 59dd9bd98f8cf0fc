package model

import "github.com/shopspring/decimal"

// AccountBalance is one token amount moved from or to a registered address.
type AccountBalance struct {
	AddressNumber int64
	TokenNumber   int64
	Amount        decimal.Decimal
}

// CustomTransaction is the structured record of a classified account transfer.
// In holds the source side, Out the destination side.
type CustomTransaction struct {
	Type              CustomType
	TypeNumber        int64
	BlockNumber       int64
	TransactionNumber int64
	In                []AccountBalance
	Out               []AccountBalance
}
