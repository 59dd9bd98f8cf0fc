package model

import (
	"fmt"
	"unicode/utf8"
)

// CustomType is the custom transaction type byte carried after the DfTx marker of an output script.
// The zero value means the transaction is not a custom transaction.
type CustomType byte

const (
	CustomTypeNone                  CustomType = 0x00
	CustomTypeCreateMasternode      CustomType = 'C'
	CustomTypeResignMasternode      CustomType = 'R'
	CustomTypeCreateToken           CustomType = 'T'
	CustomTypeMintToken             CustomType = 'M'
	CustomTypeUpdateTokenAny        CustomType = 'n'
	CustomTypeCreatePoolPair        CustomType = 'p'
	CustomTypeUpdatePoolPair        CustomType = 'u'
	CustomTypePoolSwap              CustomType = 's'
	CustomTypePoolSwapV2            CustomType = 'i'
	CustomTypeAddPoolLiquidity      CustomType = 'l'
	CustomTypeRemovePoolLiquidity   CustomType = 'r'
	CustomTypeUtxosToAccount        CustomType = 'U'
	CustomTypeAccountToUtxos        CustomType = 'b'
	CustomTypeAccountToAccount      CustomType = 'B'
	CustomTypeAnyAccountsToAccounts CustomType = 'a'
	CustomTypeSetGovVariable        CustomType = 'G'
	CustomTypeAutoAuthPrep          CustomType = 'A'
	CustomTypeSetOracleData         CustomType = 'y'
	CustomTypeDepositToVault        CustomType = 'S'
	CustomTypeWithdrawFromVault     CustomType = 'J'
	CustomTypeTakeLoan              CustomType = 'X'
	CustomTypePaybackLoan           CustomType = 'H'
	CustomTypeFutureSwap            CustomType = 'Q'
)

// noneCode is stored in transaction.custom_type_code for transactions without a custom type.
const noneCode = "0"

var customTypeNames = map[CustomType]string{
	CustomTypeNone:                  "None",
	CustomTypeCreateMasternode:      "CreateMasternode",
	CustomTypeResignMasternode:      "ResignMasternode",
	CustomTypeCreateToken:           "CreateToken",
	CustomTypeMintToken:             "MintToken",
	CustomTypeUpdateTokenAny:        "UpdateTokenAny",
	CustomTypeCreatePoolPair:        "CreatePoolPair",
	CustomTypeUpdatePoolPair:        "UpdatePoolPair",
	CustomTypePoolSwap:              "PoolSwap",
	CustomTypePoolSwapV2:            "PoolSwapV2",
	CustomTypeAddPoolLiquidity:      "AddPoolLiquidity",
	CustomTypeRemovePoolLiquidity:   "RemovePoolLiquidity",
	CustomTypeUtxosToAccount:        "UtxosToAccount",
	CustomTypeAccountToUtxos:        "AccountToUtxos",
	CustomTypeAccountToAccount:      "AccountToAccount",
	CustomTypeAnyAccountsToAccounts: "AnyAccountsToAccounts",
	CustomTypeSetGovVariable:        "SetGovVariable",
	CustomTypeAutoAuthPrep:          "AutoAuthPrep",
	CustomTypeSetOracleData:         "SetOracleData",
	CustomTypeDepositToVault:        "DepositToVault",
	CustomTypeWithdrawFromVault:     "WithdrawFromVault",
	CustomTypeTakeLoan:              "TakeLoan",
	CustomTypePaybackLoan:           "PaybackLoan",
	CustomTypeFutureSwap:            "FutureSwap",
}

// materializedTables maps materializable types to their table prefix in the custom schema.
var materializedTables = map[CustomType]string{
	CustomTypeAnyAccountsToAccounts: "any_accounts_to_accounts",
	CustomTypeAccountToAccount:      "account_to_account",
}

// MaterializableTypes lists the types that have a structured record, in processing order.
var MaterializableTypes = []CustomType{
	CustomTypeAnyAccountsToAccounts,
	CustomTypeAccountToAccount,
}

// ParseCustomTypeCode converts a stored single-character code back to its type.
// Type bytes above 0x7f are stored as the rune of the same value.
func ParseCustomTypeCode(code string) (CustomType, error) {
	if code == noneCode {
		return CustomTypeNone, nil
	}
	r, size := utf8.DecodeRuneInString(code)
	if r == utf8.RuneError || size != len(code) || r > 0xff {
		return CustomTypeNone, fmt.Errorf("invalid custom type code %q", code)
	}
	return CustomType(r), nil
}

// Code returns the single-character code persisted for the type.
func (t CustomType) Code() string {
	if t == CustomTypeNone {
		return noneCode
	}
	return string(rune(t))
}

// String returns the human label of the type.
func (t CustomType) String() string {
	if name, ok := customTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%q)", rune(t))
}

// Materializable reports whether the type has a structured record.
func (t CustomType) Materializable() bool {
	_, ok := materializedTables[t]
	return ok
}

// TablePrefix returns the custom schema table prefix for a materializable type.
func (t CustomType) TablePrefix() (string, error) {
	prefix, ok := materializedTables[t]
	if !ok {
		return "", fmt.Errorf("custom type %s is not materializable", t)
	}
	return prefix, nil
}
