package contracts

import (
	"context"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, email string) (*responses.AccessToken, error)
	// VerifyToken returns the email carried by a valid, unexpired token.
	VerifyToken(ctx context.Context, tokenString string) (string, error)
	AuthorizeRole(ctx context.Context, email, requiredRole string) error
}
