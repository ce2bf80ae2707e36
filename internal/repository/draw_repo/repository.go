package draw_repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "draw_results"
	colID        = "id"
	colDrawDate  = "draw_date"
	colDrawTime  = "draw_time"
	colL2Result  = "l2_result"
	colD3Result  = "d3_result"
	colCreatedBy = "created_by"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDrawResultRepository(dbc *pgxpool.Pool) repository.DrawResultRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetByDate - все результаты тиражей за день
func (r *repo) GetByDate(ctx context.Context, drawDate string) ([]model.DrawResult, error) {
	query := sq.Select(colID, colDrawDate, colDrawTime, colL2Result, colD3Result, colCreatedBy, colCreatedAt).
		From(table).
		Where(sq.Eq{colDrawDate: drawDate}).
		OrderBy(colDrawTime).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.DrawResult
	for rows.Next() {
		var res model.DrawResult
		err = rows.Scan(&res.ID, &res.DrawDate, &res.DrawTime, &res.L2Result, &res.D3Result, &res.CreatedBy, &res.CreatedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetBySlot - результат конкретного тиража.
// Возвращает nil, nil если результата на слот еще нет
func (r *repo) GetBySlot(ctx context.Context, drawDate, drawTime string) (*model.DrawResult, error) {
	query := sq.Select(colID, colDrawDate, colDrawTime, colL2Result, colD3Result, colCreatedBy, colCreatedAt).
		From(table).
		Where(sq.And{sq.Eq{colDrawDate: drawDate}, sq.Eq{colDrawTime: drawTime}}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var res model.DrawResult
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&res.ID, &res.DrawDate, &res.DrawTime, &res.L2Result, &res.D3Result, &res.CreatedBy, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &res, nil
}

// Insert - вставка результата тиража.
// Возвращает ID созданной записи
func (r *repo) Insert(ctx context.Context, res *model.DrawResult) (int, error) {
	query := sq.Insert(table).
		Columns(colDrawDate, colDrawTime, colL2Result, colD3Result, colCreatedBy, colCreatedAt).
		Values(res.DrawDate, res.DrawTime, res.L2Result, res.D3Result, res.CreatedBy, time.Now()).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
