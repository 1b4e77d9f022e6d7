package services

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// UserService exposes the collection operations of the Collection Manager.
// Error messages are the client's own; callers show err.Error() as is.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, draft models.Draft) error
	Update(ctx context.Context, draft models.Draft) error
	Delete(ctx context.Context, id string) error
}

type userService struct {
	client client.Client
	log    logging.Logger
}

func NewUserService(c client.Client, log logging.Logger) UserService {
	return &userService{client: c, log: log.With("service", "users")}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "list users failed", "error", err)
		return nil, err
	}
	s.log.Debug(ctx, "users listed", "count", len(users))
	return users, nil
}

func (s *userService) Create(ctx context.Context, draft models.Draft) error {
	if err := s.client.CreateUser(ctx, draft); err != nil {
		s.log.Warn(ctx, "create user failed", "error", err)
		return err
	}
	s.log.Info(ctx, "user created", "name", draft.Get("name"))
	return nil
}

// Update addresses the record by the draft's own id.
func (s *userService) Update(ctx context.Context, draft models.Draft) error {
	id := draft.ID()
	if err := s.client.UpdateUser(ctx, id, draft); err != nil {
		s.log.Warn(ctx, "update user failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "user updated", "id", id)
	return nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		s.log.Warn(ctx, "delete user failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}
