package limit_repo

import (
	"context"
	"database/sql"
	"errors"

	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "bet_limits"
	colID          = "id"
	colBetDate     = "bet_date"
	colGameTitle   = "game_title"
	colCombination = "combination"
	colLimitAmount = "limit_amount"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetLimitRepository(dbc *pgxpool.Pool) repository.BetLimitRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Get - лимит по ключу (дата, игра, комбинация).
// Возвращает nil, nil если лимит не настроен
func (r *repo) Get(ctx context.Context, betDate string, game model.GameTitle, combination string) (*model.BetLimit, error) {
	query := sq.Select(colID, colBetDate, colGameTitle, colCombination, colLimitAmount).
		From(table).
		Where(sq.And{
			sq.Eq{colBetDate: betDate},
			sq.Eq{colGameTitle: string(game)},
			sq.Eq{colCombination: combination},
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var limit model.BetLimit
	var gameStr string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&limit.ID, &limit.BetDate, &gameStr, &limit.Combination, &limit.LimitAmount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	limit.GameTitle = model.GameTitle(gameStr)
	return &limit, nil
}

// GetByDate - все лимиты на день
func (r *repo) GetByDate(ctx context.Context, betDate string) ([]model.BetLimit, error) {
	query := sq.Select(colID, colBetDate, colGameTitle, colCombination, colLimitAmount).
		From(table).
		Where(sq.Eq{colBetDate: betDate}).
		OrderBy(colGameTitle, colCombination).
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

	var limits []model.BetLimit
	for rows.Next() {
		var limit model.BetLimit
		var gameStr string
		err = rows.Scan(&limit.ID, &limit.BetDate, &gameStr, &limit.Combination, &limit.LimitAmount)
		if err != nil {
			return nil, err
		}
		limit.GameTitle = model.GameTitle(gameStr)
		limits = append(limits, limit)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return limits, nil
}

// Upsert - обновление лимита по ключу.
// Если rowsAffected = 0 - то записи не существует и делаем вставку
func (r *repo) Upsert(ctx context.Context, limit *model.BetLimit) error {
	query := sq.Update(table).
		Set(colLimitAmount, limit.LimitAmount).
		Where(sq.And{
			sq.Eq{colBetDate: limit.BetDate},
			sq.Eq{colGameTitle: string(limit.GameTitle)},
			sq.Eq{colCombination: limit.Combination},
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ex := r.getter.DefaultTrOrDB(ctx, r.dbc)

	res, err := ex.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		insertQuery := sq.Insert(table).
			Columns(colBetDate, colGameTitle, colCombination, colLimitAmount).
			Values(limit.BetDate, string(limit.GameTitle), limit.Combination, limit.LimitAmount).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = ex.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}

	return nil
}
