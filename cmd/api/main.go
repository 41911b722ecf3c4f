package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution"
	"github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/evolutionclient"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/api"
	"github.com/zaytech/message-dashboard-api/internal/config"
	"github.com/zaytech/message-dashboard-api/internal/scheduler"
	"github.com/zaytech/message-dashboard-api/internal/usecases/aggregating"
	"github.com/zaytech/message-dashboard-api/internal/usecases/authenticating"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"github.com/zaytech/message-dashboard-api/internal/usecases/messaging"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
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

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)
	statsRepo := repository.NewMessageStatsRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, storeRepo, cfg)

	evolutionClient := evolutionclient.NewClient(cfg)
	evolutionIntegrator := evolution.New(cfg, evolutionClient)

	registry := categorizing.NewService(categoryRepo, storeRepo)
	aggregator := aggregating.NewService(categoryRepo, statsRepo, productRepo, supplierRepo)
	messenger := messaging.NewService(storeRepo, messageRepo, statsRepo, registry, evolutionIntegrator)

	// Inicializa os agendadores do recomputo de contadores e da varredura
	// de pendências
	statsSyncService := scheduler.NewStatsSnapshotSyncService(
		storeRepo,
		categoryRepo,
		messageRepo,
		statsRepo,
		cfg,
	)

	pendingReminderService := scheduler.NewPendingReminderService(
		storeRepo,
		messageRepo,
		evolutionIntegrator,
		cfg,
	)

	// Inicia os agendadores em background
	if err := statsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomputo de contadores")
	} else {
		logrus.Info("Agendador de recomputo de contadores iniciado com sucesso")
	}

	if err := pendingReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de pendências")
	} else {
		logrus.Info("Agendador da varredura de pendências iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registry,
		messenger,
		aggregator,
		authenticator,
		statsSyncService,
		pendingReminderService,
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
