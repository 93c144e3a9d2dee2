package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// CatalogService fronts the sweet store with business validation.
type CatalogService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.SweetRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Create validates price and quantity constraints and persists a new sweet.
func (s *CatalogService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet := &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	}
	if err := s.repo.Create(ctx, sweet); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", sweet.ID).Str("name", sweet.Name).Msg("sweet created")
	return sweet, nil
}

func (s *CatalogService) GetAll(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

// Search delegates to the store. Supplied price bounds must not be negative;
// beyond that no validation is applied — an empty filter returns everything.
func (s *CatalogService) Search(ctx context.Context, input ports.SearchSweetsInput) ([]*domain.Sweet, error) {
	if (input.MinPrice != nil && *input.MinPrice < 0) || (input.MaxPrice != nil && *input.MaxPrice < 0) {
		return nil, domain.ErrInvalidPrice
	}
	return s.repo.Search(ctx, ports.SearchFilter{
		Name:     input.Name,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	})
}

// Update applies a partial update. Existence is pre-checked so an absent id
// is reported as not-found rather than inferred from the update result, and
// constraints are re-validated only for the fields present in the mask.
func (s *CatalogService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	if input.Price != nil && *input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, ports.UpdateSweetFields{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("sweet_id", id).Msg("failed to update sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

// Delete hard-deletes a sweet after an existence pre-check.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("sweet_id", id).Msg("failed to delete sweet")
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}
