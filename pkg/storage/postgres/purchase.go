package postgres

import (
	"context"

	"storefront/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	purchasesTable = "purchases"
)

func (p *PgSQL) StorePurchase(ctx context.Context, purchase *domain.Purchase) (domain.PurchaseID, error) {
	var row PgPurchase
	row.FromDomain(purchase)

	var id int64
	if _, err := p.Builder.Insert(purchasesTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, wrapErr(err, "store purchase")
	}

	return domain.PurchaseID(id), nil
}

func (p *PgSQL) Purchases(ctx context.Context) ([]*domain.Purchase, error) {
	var rows []PgPurchase
	if err := p.Builder.From(purchasesTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapErr(err, "fetch purchases")
	}

	return toDomainSlice(rows, (*PgPurchase).ToDomain)
}

func (p *PgSQL) PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	var row PgPurchase
	found, err := p.Builder.From(purchasesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "fetch purchase by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PurchasesByUser(ctx context.Context, userID domain.UserID) ([]*domain.Purchase, error) {
	var rows []PgPurchase
	if err := p.Builder.From(purchasesTable).
		Where(goqu.I("user_id").Eq(int64(userID))).
		Order(goqu.I("purchase_date").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapErr(err, "fetch user purchases")
	}

	return toDomainSlice(rows, (*PgPurchase).ToDomain)
}

func (p *PgSQL) PurchaseExists(ctx context.Context, userID domain.UserID, contentID domain.ContentID) (bool, error) {
	count, err := p.Builder.From(purchasesTable).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("content_id").Eq(int64(contentID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, wrapErr(err, "check purchase existence")
	}

	return count > 0, nil
}
