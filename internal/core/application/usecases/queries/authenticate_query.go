package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
)

// AuthenticateQuery checks a username/password pair against the registry.
//
// Example:
//
//	query, _ := NewAuthenticateQuery("linh", "s3cret")
//	handler := NewAuthenticateQueryHandler(db)
//
//	account, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    return nil, fmt.Errorf("login rejected")
//	}
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a query to authenticate a user.
func NewAuthenticateQuery(username string, password string) (AuthenticateQuery, error) {
	if username == "" {
		return AuthenticateQuery{}, user.ErrUsernameIsRequired
	}
	if password == "" {
		return AuthenticateQuery{}, user.ErrPasswordIsRequired
	}

	return AuthenticateQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Username returns the login name to check.
func (q AuthenticateQuery) Username() string {
	return q.username
}

// Password returns the password to check.
func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse identifies the authenticated account.
type AuthenticateQueryResponse struct {
	ID   uint64
	Name string
	Role string
}
