package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são emitidas pelo serviço de autenticação e apenas validadas aqui
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

// Perfis aceitos pela API
const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleViewer   = 3
)
