package postgres

import (
	"context"

	"storefront/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	contentTable = "content"
)

// contentWithCreator selects content rows together with the columns of their
// creator so a single query yields fully populated domain values.
func (p *PgSQL) contentWithCreator() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(contentTable).As("c")).
		Join(goqu.T(creatorsTable).As("cr"), goqu.On(goqu.I("cr.id").Eq(goqu.I("c.creator_id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.content_type"),
			goqu.I("c.name"),
			goqu.I("c.creator_id"),
			goqu.I("c.release_year"),
			goqu.I("c.available"),
			goqu.I("c.description"),
			goqu.I("c.rentable"),
			goqu.I("c.duration_minutes"),
			goqu.I("c.track_count"),
			goqu.I("cr.name").As("creator_name"),
			goqu.I("cr.country").As("creator_country"),
			goqu.I("cr.bio").As("creator_bio"),
		)
}

func (p *PgSQL) StoreContent(ctx context.Context, content domain.Content) (domain.ContentID, error) {
	var row PgContent
	row.FromDomain(content)

	var id int64
	if _, err := p.Builder.Insert(contentTable).
		Rows(row).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, wrapErr(err, "store "+contentLabel(content.Type()))
	}

	return domain.ContentID(id), nil
}

func (p *PgSQL) Contents(ctx context.Context, contentType domain.ContentType) ([]domain.Content, error) {
	var rows []PgContentRow
	if err := p.contentWithCreator().
		Where(goqu.I("c.content_type").Eq(string(contentType))).
		Order(goqu.I("c.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapErr(err, "fetch "+contentLabel(contentType)+" list")
	}

	return toDomainSlice(rows, (*PgContentRow).ToDomain)
}

func (p *PgSQL) ContentByID(
	ctx context.Context,
	contentType domain.ContentType,
	id domain.ContentID,
) (domain.Content, error) {
	var row PgContentRow
	found, err := p.contentWithCreator().
		Where(
			goqu.I("c.id").Eq(int64(id)),
			goqu.I("c.content_type").Eq(string(contentType)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "fetch "+contentLabel(contentType)+" by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateContent(ctx context.Context, id domain.ContentID, content domain.Content) error {
	var row PgContent
	row.FromDomain(content)

	_, err := p.Builder.Update(contentTable).
		Set(row).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("content_type").Eq(row.ContentType),
		).
		Executor().ExecContext(ctx)

	return wrapErr(err, "update "+contentLabel(content.Type()))
}

func (p *PgSQL) DeleteContent(ctx context.Context, contentType domain.ContentType, id domain.ContentID) error {
	_, err := p.Builder.Delete(contentTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("content_type").Eq(string(contentType)),
		).
		Executor().ExecContext(ctx)

	return wrapErr(err, "delete "+contentLabel(contentType))
}

func contentLabel(contentType domain.ContentType) string {
	switch contentType {
	case domain.ContentTypeGame:
		return "game"
	case domain.ContentTypeMovie:
		return "movie"
	case domain.ContentTypeMusicAlbum:
		return "music album"
	default:
		return "content"
	}
}
