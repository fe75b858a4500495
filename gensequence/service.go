package gensequence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"marinedata/pagination"
)

// ErrMissingFields signals a create request without organism or gene.
var ErrMissingFields = errors.New("gensequence: organism and gene are required")

// Service exposes business-level sequence operations.
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

// List returns one page of sequence records matching the filter descriptor.
// Items never carry the sequence blob.
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

// Create validates and persists a new sequence record.
func (s *Service) Create(ctx context.Context, params CreateParams) (Record, error) {
	if params.Organism == "" || params.Gene == "" {
		return Record{}, ErrMissingFields
	}

	rec := Record{
		ID:             s.idGenerator(),
		Organism:       params.Organism,
		Gene:           params.Gene,
		SequenceType:   params.SequenceType,
		Sequence:       params.Sequence,
		Description:    params.Description,
		SubmissionDate: s.now().UTC(),
	}

	return s.repo.Create(ctx, rec)
}
