package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/common"
)

// Service implements the /users resource on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.repo.Get(ctx, id)
}

// Create stores rec under a new id. A login payload (only username and
// password) is acknowledged with the id it would get but never stored, so
// signing in does not grow the collection.
func (s *Service) Create(ctx context.Context, rec Record) (Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", common.ErrorInvalidRecord)
	}
	if rec.isCredentials() {
		return Record{"id": s.repo.NextID(ctx)}, nil
	}
	return s.repo.Create(ctx, rec)
}

// Replace overwrites the record with id.
func (s *Service) Replace(ctx context.Context, id string, rec Record) (Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", common.ErrorInvalidRecord)
	}
	return s.repo.Update(ctx, id, rec)
}

// Patch merges the fields of rec into the record with id.
func (s *Service) Patch(ctx context.Context, id string, rec Record) (Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", common.ErrorInvalidRecord)
	}
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for k, v := range rec {
		cur[k] = v
	}
	return s.repo.Update(ctx, id, cur)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Seed stores recs in order with fresh ids. Ids carried by recs are ignored.
func (s *Service) Seed(ctx context.Context, recs []Record) error {
	for _, r := range recs {
		rec := r.clone()
		delete(rec, "id")
		if _, err := s.repo.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
