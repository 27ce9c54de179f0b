package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blogsphere/internal/config"
	"blogsphere/internal/domain"
	"blogsphere/internal/service/user"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Service verifies bearer tokens issued by the identity provider and turns
// them into actors. Token issuing exists for tooling and tests; sign-in
// flows live elsewhere.
type Service interface {
	ValidateAccessToken(token string) (*Claims, error)
	IssueAccessToken(userID uuid.UUID, admin bool) (string, error)
	ResolveActor(ctx context.Context, token string) (domain.Actor, error)
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Admin  bool      `json:"admin"`
	jwt.RegisteredClaims
}

type service struct {
	users  user.Service
	secret []byte
	expiry time.Duration
}

func NewService(users user.Service, cfg *config.Config) Service {
	return &service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTAccessExpiry,
	}
}

func (s *service) IssueAccessToken(userID uuid.UUID, admin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveActor validates the token and reads the admin flag from the user
// directory. The token's admin claim is used only for users the directory
// does not know.
func (s *service) ResolveActor(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	actor := domain.Actor{ID: claims.UserID, Admin: claims.Admin}
	u, err := s.users.GetByID(ctx, claims.UserID)
	switch {
	case err == nil:
		actor.Admin = u.IsAdmin
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domain.Actor{}, err
	}
	return actor, nil
}
