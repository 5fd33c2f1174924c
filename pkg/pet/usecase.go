package pet

import (
	"context"
	"fmt"
	"strings"
)

const (
	maxNameLen  = 255
	maxTypeLen  = 100
	maxBreedLen = 255
	maxColorLen = 100

	// Pagination bounds for Search.
	DefaultLimit = 100
	MaxLimit     = 1000
)

// UseCase encapsulates the catalog application logic. Validation happens
// here, before anything reaches the repository.
type UseCase interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Update(ctx context.Context, id int64, upd Update) (Pet, error)
	Delete(ctx context.Context, id int64) (Pet, error)
	Search(ctx context.Context, f Filter, skip, limit int) ([]Pet, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, p Pet) (Pet, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Type = strings.TrimSpace(p.Type)
	p.Breed = strings.TrimSpace(p.Breed)
	p.Color = strings.TrimSpace(p.Color)

	if err := requireBounded("name", p.Name, maxNameLen); err != nil {
		return Pet{}, err
	}
	if err := requireBounded("type", p.Type, maxTypeLen); err != nil {
		return Pet{}, err
	}
	if err := requireBounded("breed", p.Breed, maxBreedLen); err != nil {
		return Pet{}, err
	}
	if err := requireBounded("color", p.Color, maxColorLen); err != nil {
		return Pet{}, err
	}
	if p.Age < 0 {
		return Pet{}, ErrValidation("age must be non-negative")
	}
	if p.Price != nil && *p.Price < 0 {
		return Pet{}, ErrValidation("price must be non-negative")
	}
	return s.repo.Create(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, upd Update) (Pet, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if err := requireBounded("name", name, maxNameLen); err != nil {
			return Pet{}, err
		}
		upd.Name = &name
	}
	if upd.Type != nil {
		petType := strings.TrimSpace(*upd.Type)
		if err := requireBounded("type", petType, maxTypeLen); err != nil {
			return Pet{}, err
		}
		upd.Type = &petType
	}
	if upd.Breed != nil {
		breed := strings.TrimSpace(*upd.Breed)
		if err := requireBounded("breed", breed, maxBreedLen); err != nil {
			return Pet{}, err
		}
		upd.Breed = &breed
	}
	if upd.Color != nil {
		color := strings.TrimSpace(*upd.Color)
		if err := requireBounded("color", color, maxColorLen); err != nil {
			return Pet{}, err
		}
		upd.Color = &color
	}
	if upd.Age != nil && *upd.Age < 0 {
		return Pet{}, ErrValidation("age must be non-negative")
	}
	if upd.PriceSet && upd.Price != nil && *upd.Price < 0 {
		return Pet{}, ErrValidation("price must be non-negative")
	}
	if upd.Empty() {
		// Nothing to change: return the current record unchanged.
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *service) Delete(ctx context.Context, id int64) (Pet, error) {
	return s.repo.Delete(ctx, id)
}

// Search validates the filter and pagination before querying. skip below
// zero is rejected; limit is clamped into 1..MaxLimit with DefaultLimit
// for the zero value.
func (s *service) Search(ctx context.Context, f Filter, skip, limit int) ([]Pet, error) {
	if f.MinAge != nil && *f.MinAge < 0 {
		return nil, ErrInvalidFilter
	}
	if f.MaxAge != nil && *f.MaxAge < 0 {
		return nil, ErrInvalidFilter
	}
	if f.MinAge != nil && f.MaxAge != nil && *f.MaxAge < *f.MinAge {
		return nil, ErrInvalidFilter
	}
	if skip < 0 {
		return nil, ErrInvalidFilter
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return nil, ErrInvalidFilter
	}
	return s.repo.Search(ctx, f, skip, limit)
}

func requireBounded(field, value string, max int) error {
	if value == "" {
		return ErrValidation(fmt.Sprintf("%s is required", field))
	}
	if len(value) > max {
		return ErrValidation(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}
