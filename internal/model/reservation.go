package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StakingWithdrawalReservation is a withdrawal hold kept until its transaction lands on chain.
type StakingWithdrawalReservation struct {
	WithdrawalID    int64
	TransactionID   string
	CustomerAddress string
	Vout            decimal.Decimal
	CreateTime      time.Time
}
