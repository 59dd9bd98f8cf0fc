package model

import "github.com/shopspring/decimal"

// PendingWithdrawal is a customer withdrawal request waiting for verification.
type PendingWithdrawal struct {
	ID          int64           `json:"id"`
	Address     string          `json:"address"`
	SignMessage string          `json:"signMessage"`
	Signature   string          `json:"signature"`
	Amount      decimal.Decimal `json:"amount"`
	Asset       string          `json:"asset"`
}

// Complete reports whether the withdrawal carries everything needed to verify its signature.
func (w PendingWithdrawal) Complete() bool {
	return w.ID != 0 && w.Address != "" && w.SignMessage != "" && w.Signature != ""
}

// OpenTransaction is a transaction prepared by the issuer that waits for a verdict.
type OpenTransaction struct {
	ID              string                  `json:"id"`
	IssuerSignature string                  `json:"issuerSignature"`
	RawTx           OpenTransactionRawTx    `json:"rawTx"`
	Payload         *OpenTransactionPayload `json:"payload,omitempty"`
}

// OpenTransactionRawTx holds the serialized transaction.
type OpenTransactionRawTx struct {
	ID  string `json:"id"`
	Hex string `json:"hex"`
}

// OpenTransactionPayload links an open transaction to a withdrawal.
type OpenTransactionPayload struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Complete reports whether the open transaction can be checked against chain data.
func (t OpenTransaction) Complete() bool {
	return t.ID != "" && t.RawTx.Hex != "" && t.IssuerSignature != ""
}

// WithdrawalID returns the linked withdrawal id, if any.
func (t OpenTransaction) WithdrawalID() (int64, bool) {
	if t.Payload == nil || t.Payload.ID == 0 {
		return 0, false
	}
	return t.Payload.ID, true
}
