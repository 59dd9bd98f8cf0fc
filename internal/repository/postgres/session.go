package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"github.com/jmoiron/sqlx"
)

// Session wraps the connection held by one run.
type Session struct {
	conn    *sqlx.Conn
	schemas model.Schemas
	network model.Network
	metrics Metrics
}

func (s *Session) Begin(ctx context.Context) (store.Tx, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("begin", s.network, err, start)
	}()

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return &Tx{
		tx:      tx,
		schemas: s.schemas,
		network: s.network,
		metrics: s.metrics,
	}, nil
}

func (s *Session) Close() error {
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("release connection: %w", err)
	}
	return nil
}
