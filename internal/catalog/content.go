package catalog

import (
	"context"
	"fmt"

	"storefront/pkg/domain"
	"storefront/pkg/logger"
	"storefront/pkg/serrors"
	"storefront/pkg/storage"

	"go.uber.org/zap"
)

type contentService[T domain.Content] struct {
	storage     storage.Storage
	contentType domain.ContentType
}

// NewContentService returns the service of one content variant. contentType
// must be the tag of T.
func NewContentService[T domain.Content](storage storage.Storage, contentType domain.ContentType) ContentService[T] {
	return &contentService[T]{storage: storage, contentType: contentType}
}

func (s *contentService[T]) label() string {
	switch s.contentType {
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

func (s *contentService[T]) Create(ctx context.Context, content T) (T, error) {
	var zero T
	if content.ID() != 0 {
		return zero, serrors.With(serrors.ErrInvalidInput, "a new %s cannot carry id %d", s.label(), content.ID())
	}
	if err := content.Validate(); err != nil {
		return zero, err
	}
	if err := s.resolveCreator(ctx, content); err != nil {
		return zero, err
	}

	id, err := s.storage.StoreContent(ctx, content)
	if err != nil {
		return zero, fmt.Errorf("could not create %s: %w", s.label(), err)
	}
	if err := content.SetID(id); err != nil {
		return zero, err
	}

	logger.Info(ctx, s.label()+" created",
		zap.Int64("content_id", int64(id)),
		zap.String("price", content.Price().StringFixed(2)))

	return content, nil
}

// resolveCreator replaces the creator reference of content with the stored
// creator, failing with ErrNotFound when it does not exist.
func (s *contentService[T]) resolveCreator(ctx context.Context, content T) error {
	base := content.Base()
	creator, err := s.storage.CreatorByID(ctx, base.CreatorID())
	if err != nil {
		return fmt.Errorf("could not get creator of %s: %w", s.label(), err)
	}
	if creator == nil {
		return serrors.With(serrors.ErrNotFound, "creator %d not found", base.CreatorID())
	}

	return base.SetCreator(creator)
}

func (s *contentService[T]) All(ctx context.Context) ([]T, error) {
	contents, err := s.storage.Contents(ctx, s.contentType)
	if err != nil {
		return nil, fmt.Errorf("could not list %s items: %w", s.label(), err)
	}

	out := make([]T, 0, len(contents))
	for _, c := range contents {
		item, err := s.cast(c)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *contentService[T]) ByID(ctx context.Context, id domain.ContentID) (T, error) {
	var zero T
	content, err := s.storage.ContentByID(ctx, s.contentType, id)
	if err != nil {
		return zero, fmt.Errorf("could not get %s: %w", s.label(), err)
	}
	if content == nil {
		return zero, serrors.With(serrors.ErrNotFound, "%s %d not found", s.label(), id)
	}

	return s.cast(content)
}

func (s *contentService[T]) cast(content domain.Content) (T, error) {
	item, ok := content.(T)
	if !ok {
		var zero T

		return zero, serrors.With(serrors.ErrInternal, "storage returned %s %d for a %s lookup",
			content.Type(), content.ID(), s.contentType)
	}

	return item, nil
}

func (s *contentService[T]) Update(ctx context.Context, id domain.ContentID, content T) (T, error) {
	var zero T
	if err := content.Validate(); err != nil {
		return zero, err
	}
	if _, err := s.ByID(ctx, id); err != nil {
		return zero, err
	}
	if err := s.resolveCreator(ctx, content); err != nil {
		return zero, err
	}
	if err := bindID(content, id); err != nil {
		return zero, err
	}

	if err := s.storage.UpdateContent(ctx, id, content); err != nil {
		return zero, fmt.Errorf("could not update %s: %w", s.label(), err)
	}

	logger.Info(ctx, s.label()+" updated", zap.Int64("content_id", int64(id)))

	return content, nil
}

func (s *contentService[T]) Delete(ctx context.Context, id domain.ContentID) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteContent(ctx, s.contentType, id); err != nil {
		return fmt.Errorf("could not delete %s: %w", s.label(), err)
	}

	logger.Info(ctx, s.label()+" deleted", zap.Int64("content_id", int64(id)))

	return nil
}

func (s *contentService[T]) Available(ctx context.Context) ([]T, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]T, 0, len(all))
	for _, item := range all {
		if item.Base().Available {
			available = append(available, item)
		}
	}

	return domain.SortByName(available), nil
}

func (s *contentService[T]) Search(ctx context.Context, keyword string) ([]T, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	keyword = NormalizeKeyword(keyword)
	logger.Debug(ctx, "searching "+s.label()+" items", zap.String("keyword", keyword))

	return domain.SortByName(domain.FilterByName(all, keyword)), nil
}
