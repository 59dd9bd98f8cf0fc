package model

// Address is a chain address registered under a compact numeric key.
type Address struct {
	Number  int64
	Address string
}
