// Package services sits between the screens and the remote collection
// client. It validates input, logs outcomes and leaves state keeping to the
// screens.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// AuthService performs the login call of the Session Entry screen.
//
// Login succeeds when the server answers 2xx with a JSON object. No token is
// kept: a successful login only allows navigation.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (map[string]any, error)
}

type authService struct {
	client client.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client, log logging.Logger) AuthService {
	return &authService{client: c, log: log.With("service", "auth")}
}

// Login validates the credentials and issues exactly one Authenticate call.
// Validation failures wrap models.ErrRequired and never reach the network.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	resp, err := a.client.Authenticate(ctx, creds)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", creds.Username, "error", err)
		return nil, fmt.Errorf("login error: %w", err)
	}

	a.log.Info(ctx, "login accepted", "username", creds.Username)
	return resp, nil
}
