// Package auth resolves the calling user for a request. The vault currently
// runs session-less with a single fixed user; the Authenticator seam exists
// so real authentication can replace it without touching the CRUD layer.
package auth

import (
	"context"
	"net/http"

	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/store"
)

type contextKey struct{}

var userKey contextKey

// Authenticator resolves the user behind a request.
type Authenticator interface {
	Authenticate(r *http.Request) (*domain.User, error)
}

// Demo attributes every request to one fixed username.
type Demo struct {
	Store    store.Store
	Username string
}

func NewDemo(s store.Store, username string) *Demo {
	return &Demo{Store: s, Username: username}
}

func (d *Demo) Authenticate(_ *http.Request) (*domain.User, error) {
	u, ok, err := d.Store.GetUserByUsername(d.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// EnsureDemoUser creates the fixed user on first start so the demo session
// always resolves.
func EnsureDemoUser(s store.Store, username string) (*domain.User, error) {
	if u, ok, err := s.GetUserByUsername(username); err != nil {
		return nil, err
	} else if ok {
		return u, nil
	}

	u := &domain.User{Username: username, AvatarColor: "#6b21a8"}
	if err := s.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Middleware authenticates the request and stores the caller in the request
// context. Requests that cannot be attributed are rejected outright.
func Middleware(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.Authenticate(r)
			if err != nil {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the caller.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom extracts the caller placed by Middleware.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}
