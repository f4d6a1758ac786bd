package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
)

// TokenManager gerencia o token de longa duração da API do Meta
type TokenManager struct {
	cfg            *config.Config
	mutex          sync.Mutex
	tokenExpiresAt time.Time
	stopRefresh    chan struct{}
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// StartAutoRefresh renova o token periodicamente até StopAutoRefresh ser chamado
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.WithError(err).Error("Erro ao obter token inicial do Meta")
	}

	// Renovação diária; 23h garante a troca antes da expiração de 24h
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.WithError(err).Error("Erro na renovação periódica do token do Meta")
				ticker.Reset(1 * time.Hour)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando renovação periódica do token do Meta")
			return
		}
	}
}

func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RefreshToken troca o token atual por um token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", tm.cfg.Meta.AppID)
	params.Add("client_secret", tm.cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", tm.cfg.Meta.AccessToken)

	refreshURL := fmt.Sprintf("%s/oauth/access_token?%s", tm.cfg.Meta.URL, params.Encode())

	resp, err := http.Get(refreshURL)
	if err != nil {
		return fmt.Errorf("erro ao requisitar token de longa duração: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro ao renovar token do Meta: status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do token: %w", err)
	}

	tm.cfg.Meta.AccessToken = token.AccessToken
	tm.cfg.Meta.LongLivedToken = token.AccessToken
	if token.ExpiresIn > 0 {
		tm.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	} else {
		// Tokens de longa duração sem expires_in duram ~60 dias
		tm.tokenExpiresAt = time.Now().Add(60 * 24 * time.Hour)
	}

	logrus.WithFields(logrus.Fields{
		"expires_at": tm.tokenExpiresAt.Format(time.RFC3339),
	}).Info("Token do Meta renovado com sucesso")

	return nil
}

// EnsureValidToken renova o token quando está a menos de uma hora de expirar
func (tm *TokenManager) EnsureValidToken() error {
	tm.mutex.Lock()
	expiresAt := tm.tokenExpiresAt
	tm.mutex.Unlock()

	if expiresAt.IsZero() || time.Until(expiresAt) > time.Hour {
		return nil
	}

	return tm.RefreshToken()
}
