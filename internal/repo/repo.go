package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/fullstack-web-apps/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pg holds what every repository needs. Queries run on the transaction
// bound to ctx when there is one, otherwise directly on the pool.
type pg struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newPG(db *sqlx.DB) pg {
	return pg{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r pg) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r pg) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r pg) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

// affected runs an update/delete and reports whether any row changed.
func (r pg) affected(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r pg) exists(ctx context.Context, table string, pred sq.Eq) (bool, error) {
	query, args := r.qb.Select("1").
		From(table).
		Where(pred).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		MustSql()

	var ok bool
	if err := r.getContext(ctx, &ok, query, args...); err != nil {
		return false, err
	}
	return ok, nil
}

func isPgError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
