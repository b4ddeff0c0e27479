package service

import (
	"context"
	"errors"
	"time"

	"github.com/oscarmanceraa/KitchON/internal/config"
	"github.com/oscarmanceraa/KitchON/internal/dto"
	"github.com/oscarmanceraa/KitchON/internal/model"
	"github.com/oscarmanceraa/KitchON/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Verify validates a bearer token, re-fetches the account and rejects
	// tokens whose account disappeared or is no longer Activo.
	Verify(ctx context.Context, token string) (*dto.VerifyResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username and wrong password answer identically.
		return nil, ErrCredencialesInvalidas
	}

	if !user.Activo() {
		return nil, ErrUsuarioInactivo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Usuario: *usuarioToResponse(user),
		Token:   token,
	}, nil
}

func (s *authService) Verify(ctx context.Context, tokenStr string) (*dto.VerifyResponse, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	idRaw, ok := claims["id_usuario"].(float64)
	if !ok {
		return nil, ErrTokenInvalido
	}

	// Revocation is by account state only: a valid token dies the moment the
	// account is removed or set inactive.
	user, err := s.repo.FindByID(ctx, uint(idRaw))
	if err != nil {
		return nil, ErrTokenInvalido
	}
	if !user.Activo() {
		return nil, ErrUsuarioInactivo
	}

	return &dto.VerifyResponse{Usuario: *usuarioToResponse(user)}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id_usuario":      user.ID,
		"username":        user.Username,
		"id_tipo_usuario": user.TipoUsuarioID,
		"exp":             now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":             now.Unix(),
	}
	if user.TipoUsuario != nil {
		claims["tipo_usuario"] = user.TipoUsuario.Nombre
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", errors.New("no se pudo firmar el token")
	}
	return signed, nil
}
