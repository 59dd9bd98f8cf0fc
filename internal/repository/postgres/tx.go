package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Tx runs queries inside one database transaction. Queries reference the
// {chain} and {custom} schemas of the network; they are resolved when built.
type Tx struct {
	tx      *sqlx.Tx
	schemas model.Schemas
	network model.Network
	metrics Metrics
}

var _ store.Tx = (*Tx)(nil)

// build resolves schema tokens plus optional token/identifier pairs.
func (t *Tx) build(query string, identifiers ...string) string {
	pairs := []string{
		"{chain}", pq.QuoteIdentifier(t.schemas.Chain),
		"{custom}", pq.QuoteIdentifier(t.schemas.Custom),
	}
	for i := 0; i+1 < len(identifiers); i += 2 {
		pairs = append(pairs, identifiers[i], pq.QuoteIdentifier(identifiers[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(query)
}

func (t *Tx) Commit() error {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("commit", t.network, err, start)
	}()

	if err = t.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (t *Tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
