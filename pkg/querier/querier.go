// Package querier выполняет запросы в транзакции из контекста, если она открыта,
// иначе напрямую через пул.
package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database calls; for query_row only the round trip before Scan",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"op", "in_tx"},
)

type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	defer q.observe(ctx, "exec", time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	defer q.observe(ctx, "query", time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	defer q.observe(ctx, "query_row", time.Now())
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(ctx context.Context, op string, start time.Time) {
	inTx := "false"
	if q.getter.DefaultTrOrDB(ctx, nil) != nil {
		inTx = "true"
	}
	QueryDuration.WithLabelValues(op, inTx).Observe(time.Since(start).Seconds())
}
