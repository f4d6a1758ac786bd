package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform/meta/metaclient"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/api"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/scheduler"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/testmatrix"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/lock"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient := redisconn(ctx, cfg.Redis)
	defer redisClient.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	adCampaignRepo := repository.NewAdCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	syncRecordRepo := repository.NewSyncRecordRepository(pgConn)
	statRepo := repository.NewStatRepository(pgConn)
	operatorRepo := repository.NewOperatorRepository(pgConn)

	m := metrics.NewMetrics()
	locker := lock.NewRedisLocker(redisClient)

	authenticator := authenticating.NewService(operatorRepo, cfg)

	requestTimeout := time.Duration(cfg.PlatformSync.RequestTimeoutSeconds) * time.Second

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager, requestTimeout)
	tiktokClient := tiktokclient.NewClient(cfg, requestTimeout)

	plannerService := budgeting.NewService(campaignRepo, adCampaignRepo, adSetRepo, adRepo, statRepo)
	generatorService := testmatrix.NewService(adCampaignRepo, adSetRepo, adRepo, plannerService, cfg)
	trackerService := syncing.NewService(
		adSetRepo,
		adCampaignRepo,
		syncRecordRepo,
		plannerService,
		[]adplatform.Client{metaClient, tiktokClient},
		m,
		cfg,
	)

	lifecycleService := lifecycling.NewService(
		campaignRepo,
		adCampaignRepo,
		generatorService,
		trackerService,
		plannerService,
	)

	selectorService, err := winnerselecting.NewService(
		adCampaignRepo,
		adSetRepo,
		adRepo,
		statRepo,
		lifecycleService,
		locker,
		m,
		cfg,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	// Agendadores dos ciclos periódicos
	evaluationSyncService := scheduler.NewEvaluationSyncService(campaignRepo, selectorService, cfg)
	rolloutRetryService := scheduler.NewRolloutRetryService(campaignRepo, trackerService, lifecycleService, cfg)

	if err := evaluationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de avaliação de campanhas")
	} else {
		logrus.Info("Agendador de avaliação de campanhas iniciado com sucesso")
	}

	if err := rolloutRetryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retentativas de publicação")
	} else {
		logrus.Info("Agendador de retentativas de publicação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		lifecycleService,
		generatorService,
		trackerService,
		plannerService,
		selectorService,
		authenticator,
		m,
		evaluationSyncService,
		rolloutRetryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn cria o cliente Redis usado pelos leases de avaliação
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}
