package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/ramadanuz/taqvo/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.WebUser) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
