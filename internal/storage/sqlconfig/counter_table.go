package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ICounterTable = (*CounterTable)(nil)

type CounterTable struct {
	exec bob.Executor
}

func NewCounterTable(db *sql.DB) *CounterTable {
	return &CounterTable{exec: bob.NewDB(db)}
}

// Value reads the singleton row's current count.
func (t *CounterTable) Value(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("count"),
		sm.From("counter"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(counterRowID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Add applies an in-place arithmetic update so concurrent callers never lose
// increments to a read-modify-write race. No floor: the count may go negative.
func (t *CounterTable) Add(ctx context.Context, delta int64) error {
	q := psql.Update(
		um.Table("counter"),
		um.SetCol("count").To(psql.Raw("count + ?", delta)),
		um.Where(psql.Quote("id").EQ(psql.Arg(counterRowID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
