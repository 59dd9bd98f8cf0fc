package model

import "errors"

var (
	// ErrBlockNotFound reports a classified transaction whose block is not mirrored.
	ErrBlockNotFound = errors.New("block not found")
	// ErrEmptyCustomTransaction reports a custom transaction without a source side.
	ErrEmptyCustomTransaction = errors.New("custom transaction has no source accounts")
	// ErrCustomTypeMismatch reports chain data whose custom type differs from the stored code.
	ErrCustomTypeMismatch = errors.New("custom type mismatch")
)
