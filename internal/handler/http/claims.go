package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/attendly/payroll-backend-go/internal/domain/auth"
)

// claimsUserID pulls the authenticated user id out of the verified token.
// The verifier middleware runs first, so a missing claim means a token we
// did not mint.
func claimsUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
