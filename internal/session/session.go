// Package session carries the acting user through a context. Every write
// operation is attributed to a colleague name selected at login; there is
// no authentication beyond that selection.
package session

import (
	"context"
	"errors"
	"strings"
)

// ErrNoUser indicates an operation that requires a logged-in user was
// attempted without one.
var ErrNoUser = errors.New("no user in session")

type contextKey struct{}

// WithUser returns a context carrying the acting user's display name.
func WithUser(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKey{}, strings.TrimSpace(name))
}

// User returns the acting user's display name, or ErrNoUser when the
// context carries none.
func User(ctx context.Context) (string, error) {
	name, _ := ctx.Value(contextKey{}).(string)
	if name == "" {
		return "", ErrNoUser
	}
	return name, nil
}
