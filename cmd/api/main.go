package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/blingclient"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop/nuvemshopclient"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/api"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/scheduler"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/account"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	insightRepo := repository.NewCustomerInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	blingClient := blingclient.NewClient(cfg)
	blingIntegrator := bling.New(cfg, blingClient)

	nuvemshopClient := nuvemshopclient.NewClient(cfg)
	nuvemshopIntegrator := nuvemshop.New(cfg, nuvemshopClient)

	accountService := account.NewService(accountRepo, blingIntegrator, cfg)

	// Inicializa o serviço de insights com suporte a cache de snapshots
	insightService := insighting.NewService(cfg, blingIntegrator, nuvemshopIntegrator, accountRepo)
	cachedInsightService := insightService.(*insighting.Service).WithCache(insightRepo)

	// Inicializa o agendador de sincronização de snapshots diários
	insightSyncService := scheduler.NewCustomerInsightSyncService(
		accountRepo,
		insightRepo,
		cachedInsightService,
		cfg,
	)

	// Inicia o agendador em background
	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights de clientes")
	} else {
		logrus.Info("Agendador de sincronização de insights de clientes iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedInsightService,
		insightRepo,
		accountService,
		authenticator,
		insightSyncService,
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
