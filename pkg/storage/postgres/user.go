package postgres

import (
	"context"

	"storefront/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user *domain.User) (domain.UserID, error) {
	var row PgUser
	row.FromDomain(user)

	var id int64
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, wrapErr(err, "store user")
	}

	return domain.UserID(id), nil
}

func (p *PgSQL) Users(ctx context.Context) ([]*domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapErr(err, "fetch users")
	}

	return toDomainSlice(rows, (*PgUser).ToDomain)
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, "fetch user by id", goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, "fetch user by email", goqu.I("email").Eq(email))
}

func (p *PgSQL) userWhere(ctx context.Context, op string, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, op)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateUser(ctx context.Context, user *domain.User) error {
	var row PgUser
	row.FromDomain(user)

	_, err := p.Builder.Update(usersTable).
		Set(row).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)

	return wrapErr(err, "update user")
}

func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) error {
	_, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)

	return wrapErr(err, "delete user")
}
