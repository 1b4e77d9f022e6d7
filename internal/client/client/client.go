package client

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Client is the contract of the remote users collection.
type Client interface {
	// Authenticate posts the credentials and returns the decoded response
	// object. The demo endpoint is a plain collection POST; success only
	// means the server accepted the request.
	Authenticate(ctx context.Context, creds models.Credentials) (map[string]any, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, draft models.Draft) error
	UpdateUser(ctx context.Context, id string, draft models.Draft) error
	DeleteUser(ctx context.Context, id string) error
}
