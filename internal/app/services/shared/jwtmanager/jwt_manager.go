package jwtmanager

import (
	"context"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager signs and verifies HS256 access tokens carrying an email claim.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type CreateTokenInput struct {
	Email string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput holds the email of a valid token. Valid is false for a
// bad signature, an expired token or a token without the email claim.
type VerifyTokenOutput struct {
	Valid bool
	Email string
}

func NewJWTManager(secret string, log *zap.Logger) (*JWTManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    constvars.AccessTokenLifetime,
		now:    time.Now,
	}, nil
}

// CreateToken sets iat to now and exp to now plus one hour.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Email) == "" {
		return nil, errors.New("email is required")
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.MapClaims{
		constvars.AccessTokenClaimEmail: in.Email,
		"iat":                           now.Unix(),
		"exp":                           expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, errors.New("token is required")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}

	parsed, err := jwt.Parse(in.Token, keyFunc)
	if err != nil || !parsed.Valid {
		j.log.Info("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return &VerifyTokenOutput{Valid: false}, nil
	}
	email, _ := claims[constvars.AccessTokenClaimEmail].(string)
	if email == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}
	return &VerifyTokenOutput{Valid: true, Email: email}, nil
}
