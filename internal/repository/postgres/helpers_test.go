package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/jmoiron/sqlx"
)

type txFixture struct {
	tx      *Tx
	sql     sqlmock.Sqlmock
	metrics *MockMetrics
}

// newTxFixture opens a sqlmock-backed transaction on the testnet schema set.
func newTxFixture(t *testing.T) txFixture {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	metrics := NewMockMetrics(ctrl)

	return txFixture{
		tx: &Tx{
			tx:      tx,
			schemas: model.Schemas{Chain: "testnet", Custom: "testnet_custom"},
			network: model.Testnet,
			metrics: metrics,
		},
		sql:     mock,
		metrics: metrics,
	}
}

func (f txFixture) expectObserve(operation string, failed bool) {
	errMatcher := gomock.Nil()
	if failed {
		errMatcher = gomock.Not(gomock.Nil())
	}
	f.metrics.EXPECT().Observe(operation, model.Testnet, errMatcher, gomock.Any())
}

func (f txFixture) verify(t *testing.T) {
	t.Helper()
	if err := f.sql.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}
