package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(ctrl *gomock.Controller) (Authenticator, *mocks.MockOperatorRepository) {
	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
	return NewService(operatorRepo, cfg), operatorRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_EmiteTokenComClaimsDoOperador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, operatorRepo := newTestService(ctrl)
	ctx := context.Background()

	operatorRepo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(&domain.Operator{
		ID:           "OP0001",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "senha-correta"),
		Active:       true,
	}, nil)

	token, err := service.Login(ctx, " Ana@Example.com ", "senha-correta")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "OP0001", claims.OperatorID)
	assert.False(t, claims.Automation)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, operatorRepo := newTestService(ctrl)
	ctx := context.Background()

	operatorRepo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(&domain.Operator{
		ID:           "OP0001",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "senha-correta"),
		Active:       true,
	}, nil)

	token, err := service.Login(ctx, "ana@example.com", "senha-errada")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_OperadorDesativado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, operatorRepo := newTestService(ctrl)
	ctx := context.Background()

	operatorRepo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(&domain.Operator{
		ID:           "OP0001",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "senha-correta"),
		Active:       false,
	}, nil)

	token, err := service.Login(ctx, "ana@example.com", "senha-correta")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrOperatorDisabled)
}

func TestLogin_OperadorInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, operatorRepo := newTestService(ctrl)
	ctx := context.Background()

	operatorRepo.EXPECT().GetByEmail(ctx, "ninguem@example.com").Return(nil, nil)

	token, err := service.Login(ctx, "ninguem@example.com", "qualquer")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrOperatorNotFound)
}

func TestLogin_DadosObrigatoriosAusentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_TokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
