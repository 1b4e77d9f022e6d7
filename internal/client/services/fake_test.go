package services

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	AuthRet map[string]any
	AuthErr error

	ListRet []models.User
	ListErr error

	CreateErr error
	UpdateErr error
	DeleteErr error

	Calls []string

	LastCreds models.Credentials
	LastDraft models.Draft
	LastID    string
}

func (f *fakeClient) Authenticate(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	f.Calls = append(f.Calls, "auth")
	f.LastCreds = creds
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.Calls = append(f.Calls, "list")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateUser(ctx context.Context, draft models.Draft) error {
	f.Calls = append(f.Calls, "create")
	f.LastDraft = draft
	return f.CreateErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, draft models.Draft) error {
	f.Calls = append(f.Calls, "update")
	f.LastID = id
	f.LastDraft = draft
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.Calls = append(f.Calls, "delete")
	f.LastID = id
	return f.DeleteErr
}
