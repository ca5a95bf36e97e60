package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/database/postgres"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/clickup"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/clickup/clickupclient"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/api"
	"github.com/vfg2006/launch-planner-api/internal/config"
	"github.com/vfg2006/launch-planner-api/internal/scheduler"
	"github.com/vfg2006/launch-planner-api/internal/usecases/authenticating"
	"github.com/vfg2006/launch-planner-api/internal/usecases/checklisting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"github.com/vfg2006/launch-planner-api/internal/usecases/contenting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/exporting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/launching"
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

	launchRepo := repository.NewLaunchRepository(pgConn)
	communicationRepo := repository.NewCommunicationRepository(pgConn)
	contentRepo := repository.NewContentRepository(pgConn)
	stepRepo := repository.NewStepRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	clickupClient := clickupclient.NewClient(cfg)
	clickupIntegrator := clickup.New(cfg, clickupClient)

	launchService := launching.NewService(launchRepo)
	communicationService := communicating.NewService(launchRepo, communicationRepo, contentRepo)
	checklistService := checklisting.NewService(launchRepo, stepRepo)
	contentService := contenting.NewService(launchRepo, contentRepo, communicationRepo, openaiIntegrator)
	exportService := exporting.NewService(launchRepo, communicationRepo, stepRepo, clickupIntegrator)

	// Inicializa o agendador de lembretes do cronograma de comunicação
	reminderService := scheduler.NewCommunicationReminderService(
		launchRepo,
		communicationRepo,
		communicationService,
		cfg,
	)

	if err := reminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes de comunicação")
	} else {
		logrus.Info("Agendador de lembretes de comunicação iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		launchService,
		communicationService,
		checklistService,
		contentService,
		exportService,
		authenticator,
		reminderService,
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
