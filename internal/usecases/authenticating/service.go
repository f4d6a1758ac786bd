package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator autentica operadores e valida os tokens emitidos. O valor das
// claims é o que os handlers gravam como actor nas operações de campanha.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	operatorRepo repository.OperatorRepository
	cfg          *config.Config
}

func NewService(operatorRepo repository.OperatorRepository, cfg *config.Config) Authenticator {
	return &Service{
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar operador no banco de dados")
	}

	if operator == nil {
		return "", NewAuthError(ErrOperatorNotFound, apiErrors.ErrUserNotFound, "Operador não encontrado")
	}

	if !operator.Active {
		return "", NewOperatorAuthError(ErrOperatorDisabled, apiErrors.ErrUserDisabled, operator.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", NewOperatorAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, operator.ID, "Senha incorreta")
	}

	token, err := generateJWT(operator, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func generateJWT(operator *domain.Operator, secret string) (string, error) {
	claims := domain.Claims{
		OperatorID:    operator.ID,
		OperatorName:  operator.Name,
		OperatorEmail: operator.Email,
		Automation:    operator.Automation,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
