package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// ListToday returns the rows created on the server's current date, most
// recent first.
func (t *TransactionsTable) ListToday(ctx context.Context) ([]Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "type", "amount", "description", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Raw("created_at::date = CURRENT_DATE")),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]())
}

// ListByDate returns the rows created on the given date, most recent first.
// The date string goes straight to the query engine; a malformed value is a
// query error, not a validation error.
func (t *TransactionsTable) ListByDate(ctx context.Context, date string) ([]Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "type", "amount", "description", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Raw("created_at::date = ?", date)),
		sm.OrderBy("created_at").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]())
}

// MonthlyAggregates returns one row per distinct date in the given year and
// month that has at least one transaction, ordered by date ascending. Dates
// with no rows are absent, not zero-filled.
func (t *TransactionsTable) MonthlyAggregates(ctx context.Context, year, month string) ([]DailyAggregate, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("created_at::date AS date"),
			psql.Raw("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income"),
			psql.Raw("COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense"),
		),
		sm.From("transactions"),
		sm.Where(psql.Raw("EXTRACT(YEAR FROM created_at) = ?", year)),
		sm.Where(psql.Raw("EXTRACT(MONTH FROM created_at) = ?", month)),
		sm.GroupBy(psql.Raw("created_at::date")),
		sm.OrderBy(psql.Raw("date")),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[DailyAggregate]())
}

// DailySummary returns today's income and expense sums, zero-defaulted.
func (t *TransactionsTable) DailySummary(ctx context.Context) (DailySummary, error) {
	q := psql.Select(
		sm.Columns(
			psql.Raw("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income"),
			psql.Raw("COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense"),
		),
		sm.From("transactions"),
		sm.Where(psql.Raw("created_at::date = CURRENT_DATE")),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[DailySummary]())
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := psql.Insert(
		im.Into("transactions", "type", "amount", "description"),
		im.Values(psql.Arg(create.Type, create.Amount, create.Description)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Update replaces type, amount, and description for one row and returns the
// affected-row count. Zero means the ID matched nothing.
func (t *TransactionsTable) Update(ctx context.Context, id int64, update *TransactionUpdate) (int64, error) {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("description").ToArg(update.Description),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one row and returns the affected-row count.
func (t *TransactionsTable) Delete(ctx context.Context, id int64) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
