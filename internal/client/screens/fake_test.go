package screens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

type fakeAuth struct {
	mu    sync.Mutex
	calls int
	last  models.Credentials
	err   error
	// block, when set, holds Login until it is closed.
	block chan struct{}
	// started is signalled once Login has been entered.
	started chan struct{}
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	f.mu.Lock()
	f.calls++
	f.last = creds
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"id": float64(11)}, nil
}

// fakeUsers is an in-memory UserService. Every call is appended to calls.
type fakeUsers struct {
	mu    sync.Mutex
	calls []string

	list    []models.User
	listErr error

	createErr error
	updateErr error
	deleteErr error

	created []models.Draft
	updated []models.Draft

	// afterMutate replaces list once a mutation succeeds.
	afterMutate []models.User

	block   chan struct{}
	started chan struct{}
}

func (f *fakeUsers) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeUsers) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.User(nil), f.list...), nil
}

func (f *fakeUsers) mutated() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.afterMutate != nil {
		f.list = f.afterMutate
	}
}

func (f *fakeUsers) Create(ctx context.Context, d models.Draft) error {
	f.record("create")
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	f.created = append(f.created, d)
	f.mu.Unlock()
	f.mutated()
	return nil
}

func (f *fakeUsers) Update(ctx context.Context, d models.Draft) error {
	f.record("update:" + d.ID())
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	f.updated = append(f.updated, d)
	f.mu.Unlock()
	f.mutated()
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.record("delete:" + id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mutated()
	return nil
}
