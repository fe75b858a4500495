package species

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"marinedata/pagination"
)

// ErrMissingScientificName signals a create request without the one required
// field.
var ErrMissingScientificName = errors.New("species: scientific name is required")

// Service exposes business-level species operations.
type Service struct {
	repo        Repository
	idGenerator func() string
	now         func() time.Time
}

// ListResult bundles a page of records with its pagination descriptor.
type ListResult struct {
	Items []Record
	Meta  pagination.Meta
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:        repo,
		idGenerator: func() string { return uuid.NewString() },
		now:         time.Now,
	}
}

func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.idGenerator = gen
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns one page of species matching the filter descriptor.
func (s *Service) List(ctx context.Context, filters Filters) (ListResult, error) {
	filters.Page, filters.Limit = pagination.Normalize(filters.Page, filters.Limit)

	items, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Items: items,
		Meta:  pagination.NewMeta(total, filters.Page, filters.Limit),
	}, nil
}

// Create validates and persists a new species record.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	if params.ScientificName == "" {
		return Record{}, ErrMissingScientificName
	}

	rec := Record{
		ID:                 s.idGenerator(),
		ScientificName:     params.ScientificName,
		CommonName:         params.CommonName,
		Genus:              params.Genus,
		Family:             params.Family,
		MarineZone:         params.MarineZone,
		ConservationStatus: params.ConservationStatus,
		Description:        params.Description,
		LastUpdated:        s.now().UTC(),
	}

	return s.repo.Create(ctx, rec)
}
