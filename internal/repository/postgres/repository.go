// Package postgres implements the relational store on PostgreSQL.
package postgres

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
)

// Repository hands out one connection per run against the schema set of a network.
type Repository struct {
	db      *sqlx.DB
	metrics Metrics
}

var _ store.Store = (*Repository)(nil)

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Open reserves a dedicated connection for the caller; Close releases it.
func (r *Repository) Open(ctx context.Context, network model.Network) (store.Session, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("open", network, err, start)
	}()

	schemas, err := model.SchemaFor(network)
	if err != nil {
		return nil, fmt.Errorf("resolve schemas: %w", err)
	}

	conn, err := r.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	return &Session{
		conn:    conn,
		schemas: schemas,
		network: network,
		metrics: r.metrics,
	}, nil
}

func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}
