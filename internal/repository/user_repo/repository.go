package user_repo

import (
	"context"
	"database/sql"

	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colRole         = "role"
	colParentID     = "parent_id"
	colPercentageL2 = "percentage_l2"
	colPercentageL3 = "percentage_l3"
	colWinningsL2   = "winnings_l2"
	colWinningsL3   = "winnings_l3"
)

var allColumns = []string{
	colID, colName, colLogin, colPasswordHash, colRole, colParentID,
	colPercentageL2, colPercentageL3, colWinningsL2, colWinningsL3,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash, colRole, colParentID,
			colPercentageL2, colPercentageL3, colWinningsL2, colWinningsL3).
		Values(user.Name, user.Login, user.Password, string(user.Role), user.ParentID,
			user.PercentageL2, user.PercentageL3, user.WinningsL2, user.WinningsL3).
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

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colLogin: login})
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Sqlizer) (*model.User, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var role string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Login, &user.Password, &role, &user.ParentID,
			&user.PercentageL2, &user.PercentageL3, &user.WinningsL2, &user.WinningsL3)
	if err != nil {
		return nil, err
	}

	user.Role = model.Role(role)
	return &user, nil
}

// GetChildren - прямые подчиненные узла иерархии
func (r *repo) GetChildren(ctx context.Context, parentID int) ([]model.User, error) {
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colParentID: parentID}).
		OrderBy(colID).
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

	var users []model.User
	for rows.Next() {
		var user model.User
		var role string
		err = rows.Scan(&user.ID, &user.Name, &user.Login, &user.Password, &role, &user.ParentID,
			&user.PercentageL2, &user.PercentageL3, &user.WinningsL2, &user.WinningsL3)
		if err != nil {
			return nil, err
		}
		user.Role = model.Role(role)
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateAllocation - обновляет четыре поля аллокации одним UPDATE.
// Частично обновленные поля не видны конкурентным читателям
func (r *repo) UpdateAllocation(ctx context.Context, id int, upd model.AllocationUpdate) error {
	query := sq.Update(table).
		Set(colPercentageL2, upd.PercentageL2).
		Set(colPercentageL3, upd.PercentageL3).
		Set(colWinningsL2, upd.WinningsL2).
		Set(colWinningsL3, upd.WinningsL3).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}

	return nil
}
