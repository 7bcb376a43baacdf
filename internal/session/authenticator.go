package session

import (
	"context"
	"fmt"

	"niyam/internal/gateway"
)

// backendClient is the slice of the gateway the auth flows need.
type backendClient interface {
	Login(ctx context.Context, req gateway.LoginRequest) (*gateway.LoginResponse, error)
	AdminLogin(ctx context.Context, req gateway.LoginRequest) (*gateway.AdminLoginResponse, error)
	Signup(ctx context.Context, req gateway.SignupRequest) (*gateway.LoginResponse, error)
	Me(ctx context.Context) (*gateway.MeResponse, error)
	Logout(ctx context.Context) error
}

// Authenticator executes the login, signup, logout, and restore flows against
// the backend and keeps the store in sync with their outcomes.
type Authenticator struct {
	backend backendClient
	store   *Store
}

// NewAuthenticator wires the flows to a store and a backend client.
func NewAuthenticator(backend backendClient, store *Store) *Authenticator {
	return &Authenticator{backend: backend, store: store}
}

// Login authenticates a regular user and installs the normalized identity.
func (a *Authenticator) Login(ctx context.Context, identifier, password string) (*SessionUser, error) {
	gen := a.store.beginGeneration()
	resp, err := a.backend.Login(ctx, gateway.LoginRequest{Identifier: identifier, Password: password})
	if err != nil {
		return nil, err
	}
	if !a.store.stillCurrent(gen) {
		return nil, fmt.Errorf("session changed during login")
	}

	user := NormalizeUser(resp.User.Body)
	a.store.SetToken(resp.Token)
	a.store.SetUser(user)
	return user, nil
}

// AdminLogin authenticates an administrator and installs the normalized
// identity.
func (a *Authenticator) AdminLogin(ctx context.Context, identifier, password string) (*SessionUser, error) {
	gen := a.store.beginGeneration()
	resp, err := a.backend.AdminLogin(ctx, gateway.LoginRequest{Identifier: identifier, Password: password})
	if err != nil {
		return nil, err
	}
	if !a.store.stillCurrent(gen) {
		return nil, fmt.Errorf("session changed during login")
	}

	user := NormalizeAdmin(resp.Admin.Body)
	a.store.SetToken(resp.Token)
	a.store.SetUser(user)
	return user, nil
}

// Signup registers a new user and logs them straight in.
func (a *Authenticator) Signup(ctx context.Context, req gateway.SignupRequest) (*SessionUser, error) {
	gen := a.store.beginGeneration()
	resp, err := a.backend.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	if !a.store.stillCurrent(gen) {
		return nil, fmt.Errorf("session changed during signup")
	}

	user := NormalizeUser(resp.User.Body)
	a.store.SetToken(resp.Token)
	a.store.SetUser(user)
	return user, nil
}

// Logout fires the remote logout and then clears local state regardless of
// the network outcome, so the user is never stuck logged in locally.
func (a *Authenticator) Logout(ctx context.Context) error {
	err := a.backend.Logout(ctx)
	a.store.Logout()
	return err
}

// Restore re-validates a hydrated token by fetching the current user. Any
// failure clears the session: a revoked or expired token must not linger. A
// restore that lost a race against a newer login leaves the store untouched.
func (a *Authenticator) Restore(ctx context.Context) (*SessionUser, error) {
	if a.store.Token() == "" {
		return nil, nil
	}

	gen := a.store.beginGeneration()
	resp, err := a.backend.Me(ctx)
	if !a.store.stillCurrent(gen) {
		return a.store.Current().User, nil
	}
	if err != nil {
		a.store.Logout()
		return nil, err
	}

	user := NormalizeUser(resp.User.Body)
	a.store.SetUser(user)
	return user, nil
}
