package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	TikTok         TikTok         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	TestMatrix     TestMatrix     `mapstructure:",squash"`
	PlatformSync   PlatformSync   `mapstructure:",squash"`
	EvaluationSync EvaluationSync `mapstructure:",squash"`
	QueueRetry     QueueRetry     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr            string `mapstructure:"redis_addr"`
	Password        string `mapstructure:"redis_password"`
	DB              int    `mapstructure:"redis_db"`
	LeaseTTLSeconds int    `mapstructure:"redis_lease_ttl_seconds"`
}

type Meta struct {
	BaseURL        string `mapstructure:"meta_base_url"`
	URL            string `mapstructure:"meta_url"`
	Version        string `mapstructure:"meta_version"`
	AccessToken    string `mapstructure:"meta_access_token"`
	AppID          string `mapstructure:"meta_app_id"`
	AppSecret      string `mapstructure:"meta_app_secret"`
	LongLivedToken string `mapstructure:"meta_long_lived_token"`
}

type TikTok struct {
	URL          string `mapstructure:"tiktok_url"`
	AccessToken  string `mapstructure:"tiktok_access_token"`
	AdvertiserID string `mapstructure:"tiktok_advertiser_id"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type TestMatrix struct {
	// MaxFanout é o teto de combinações por AdCampaign, refletindo os limites
	// das APIs das plataformas
	MaxFanout int `mapstructure:"test_matrix_max_fanout"`
}

type PlatformSync struct {
	MaxConcurrentDispatches int `mapstructure:"platform_sync_max_concurrent_dispatches"`
	MaxAttempts             int `mapstructure:"platform_sync_max_attempts"`
	BaseBackoffMillis       int `mapstructure:"platform_sync_base_backoff_millis"`
	RequestTimeoutSeconds   int `mapstructure:"platform_sync_request_timeout_seconds"`
}

type EvaluationSync struct {
	CronSchedule         string `mapstructure:"evaluation_sync_cron"`
	TestWindowDays       int    `mapstructure:"evaluation_sync_test_window_days"`
	MinSampleSpend       string `mapstructure:"evaluation_sync_min_sample_spend"`
	MinSampleImpressions int64  `mapstructure:"evaluation_sync_min_sample_impressions"`
	Enabled              bool   `mapstructure:"evaluation_sync_enabled"`
}

type QueueRetry struct {
	CronSchedule string `mapstructure:"queue_retry_cron"`
	Enabled      bool   `mapstructure:"queue_retry_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LEASE_TTL_SECONDS", 120) // Tempo máximo de uma avaliação

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("TIKTOK_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Teto de 50 ad sets por campanha (limite da API do Meta)
	viper.SetDefault("TEST_MATRIX_MAX_FANOUT", 50)

	viper.SetDefault("PLATFORM_SYNC_MAX_CONCURRENT_DISPATCHES", 4)
	viper.SetDefault("PLATFORM_SYNC_MAX_ATTEMPTS", 5)
	viper.SetDefault("PLATFORM_SYNC_BASE_BACKOFF_MILLIS", 500)
	viper.SetDefault("PLATFORM_SYNC_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("EVALUATION_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("EVALUATION_SYNC_TEST_WINDOW_DAYS", 7)
	viper.SetDefault("EVALUATION_SYNC_MIN_SAMPLE_SPEND", "20.00")
	viper.SetDefault("EVALUATION_SYNC_MIN_SAMPLE_IMPRESSIONS", 1000)
	viper.SetDefault("EVALUATION_SYNC_ENABLED", false)

	// Reenfileiramento de campanhas em errorInTestingQueue é manual por padrão
	viper.SetDefault("QUEUE_RETRY_CRON", "*/15 * * * *")
	viper.SetDefault("QUEUE_RETRY_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
