package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyClientName identifica chamadas autenticadas por chave de API nos logs e nas claims
const APIKeyClientName = "api-key"

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidateAPIKey(key string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateAPIKey compara a chave recebida com o hash bcrypt configurado.
// Integrações máquina a máquina recebem o perfil de operador.
func (s *Service) ValidateAPIKey(key string) (*domain.Claims, error) {
	if s.cfg.APIKeyHash == "" {
		return nil, ErrAPIKeyDisabled
	}

	if key == "" {
		return nil, ErrInvalidAPIKey
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.APIKeyHash), []byte(key)); err != nil {
		return nil, ErrInvalidAPIKey
	}

	return &domain.Claims{
		UserName:   APIKeyClientName,
		UserRoleID: domain.RoleOperator,
	}, nil
}
