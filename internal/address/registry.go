// Package address assigns compact numeric keys to chain addresses.
package address

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// Store is the subset of the relational store used by the registry.
type Store interface {
	AddressNumbers(ctx context.Context, addresses []string) (map[string]int64, error)
	MaxAddressNumber(ctx context.Context) (int64, error)
	InsertAddresses(ctx context.Context, addresses []model.Address) error
}

// Registry is run-scoped: it must be discarded with the transaction it was built on.
// Numbers are allocated monotonically above the highest stored number and are
// only persisted by Flush.
type Registry struct {
	store   Store
	max     int64
	known   map[string]int64
	pending []model.Address
}

// NewRegistry loads the current allocation watermark.
func NewRegistry(ctx context.Context, store Store) (*Registry, error) {
	watermark, err := store.MaxAddressNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("load max address number: %w", err)
	}
	return &Registry{
		store: store,
		max:   watermark,
		known: make(map[string]int64),
	}, nil
}

// Number returns the key of address, allocating a new one if the address has never been seen.
func (r *Registry) Number(ctx context.Context, address string) (int64, error) {
	if number, ok := r.known[address]; ok {
		return number, nil
	}

	stored, err := r.store.AddressNumbers(ctx, []string{address})
	if err != nil {
		return 0, fmt.Errorf("lookup address %s: %w", address, err)
	}
	if number, ok := stored[address]; ok {
		r.known[address] = number
		return number, nil
	}

	r.max++
	r.known[address] = r.max
	r.pending = append(r.pending, model.Address{Number: r.max, Address: address})
	return r.max, nil
}

// Pending returns the addresses allocated since the last flush.
func (r *Registry) Pending() []model.Address {
	return append([]model.Address(nil), r.pending...)
}

// Flush persists newly allocated addresses. It must run before rows referencing them are written.
func (r *Registry) Flush(ctx context.Context) error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.store.InsertAddresses(ctx, r.pending); err != nil {
		return fmt.Errorf("insert %d addresses: %w", len(r.pending), err)
	}
	r.pending = nil
	return nil
}
