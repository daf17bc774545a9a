package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when the username is unknown or the password is wrong.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateQueryHandler checks login credentials against the user registry.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for authentication queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle executes the authentication query.
// Returns ErrInvalidCredentials when no account matches.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var resp AuthenticateQueryResponse
	var role int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role
		FROM users
		WHERE username = ? AND password = ?
	`, query.Username(), query.Password()).Row()

	err := row.Scan(&resp.ID, &resp.Name, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	resp.Role = user.Role(role).String()
	return resp, nil
}
