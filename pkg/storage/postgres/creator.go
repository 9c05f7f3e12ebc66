package postgres

import (
	"context"

	"storefront/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"
)

const (
	creatorsTable = "creators"
)

func (p *PgSQL) StoreCreator(ctx context.Context, creator *domain.Creator) (domain.CreatorID, error) {
	var row PgCreator
	row.FromDomain(creator)

	var id int64
	if _, err := p.Builder.Insert(creatorsTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, wrapErr(err, "store creator")
	}

	return domain.CreatorID(id), nil
}

func (p *PgSQL) Creators(ctx context.Context) ([]*domain.Creator, error) {
	var rows []PgCreator
	if err := p.Builder.From(creatorsTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapErr(err, "fetch creators")
	}

	return toDomainSlice(rows, (*PgCreator).ToDomain)
}

func (p *PgSQL) CreatorByID(ctx context.Context, id domain.CreatorID) (*domain.Creator, error) {
	var row PgCreator
	found, err := p.Builder.From(creatorsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "fetch creator by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateCreator(ctx context.Context, creator *domain.Creator) error {
	var row PgCreator
	row.FromDomain(creator)

	_, err := p.Builder.Update(creatorsTable).
		Set(row).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)

	return wrapErr(err, "update creator")
}

func (p *PgSQL) DeleteCreator(ctx context.Context, id domain.CreatorID) error {
	_, err := p.Builder.Delete(creatorsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)

	return wrapErr(err, "delete creator")
}

func (p *PgSQL) HasContentByCreatorID(ctx context.Context, id domain.CreatorID) (bool, error) {
	count, err := p.Builder.From(contentTable).
		Where(goqu.I("creator_id").Eq(int64(id))).
		CountContext(ctx)
	if err != nil {
		return false, wrapErr(err, "count content by creator")
	}

	return count > 0, nil
}

// revenueByCreator sums price_paid of every purchase per creator, highest
// first. Ties go to the lowest creator id.
func (p *PgSQL) revenueByCreator() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(purchasesTable).As("p")).
		Join(goqu.T(contentTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("p.content_id")))).
		Join(goqu.T(creatorsTable).As("cr"), goqu.On(goqu.I("cr.id").Eq(goqu.I("c.creator_id")))).
		Select(
			goqu.I("cr.id"),
			goqu.I("cr.name"),
			goqu.I("cr.country"),
			goqu.I("cr.bio"),
			goqu.SUM("p.price_paid").As("revenue"),
		).
		GroupBy(goqu.I("cr.id")).
		Order(goqu.I("revenue").Desc(), goqu.I("cr.id").Asc())
}

func (p *PgSQL) TopEarner(ctx context.Context) (*domain.Creator, decimal.Decimal, error) {
	var row PgCreatorRevenue
	found, err := p.revenueByCreator().Limit(1).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, decimal.Zero, wrapErr(err, "fetch top earning creator")
	}
	if !found {
		return nil, decimal.Zero, nil
	}

	creator, err := row.ToDomain()
	if err != nil {
		return nil, decimal.Zero, err
	}

	return creator, row.Revenue, nil
}
