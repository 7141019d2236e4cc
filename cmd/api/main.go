package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/database/postgres"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/google"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/metaclient"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/api"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/scheduler"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/aggregating"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/connecting"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/statestore"
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

	connectionRepo := repository.NewConnectionRepository(pgConn)
	adDataRepo := repository.NewAdDataRepository(pgConn)

	// Store de states OAuth em memória, com TTL configurável
	states := statestore.NewMemoryStore(time.Duration(cfg.OAuth.StateTTLMinutes) * time.Minute)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)
	googleIntegrator := google.New(cfg)

	syncService := syncing.NewService(
		cfg,
		connectionRepo,
		adDataRepo,
		syncing.NewSyncerRegistry(metaIntegrator, googleIntegrator),
	)

	connectionService := connecting.NewService(
		states,
		connecting.NewRegistry(metaIntegrator, googleIntegrator),
		connectionRepo,
		syncService, // Desconectar cancela os syncs em andamento da connection
	)

	metricsService := aggregating.NewService(
		connectionRepo,
		adDataRepo,
		metaIntegrator,
		googleIntegrator,
	)

	// Inicializa os agendadores em background
	stateSweepService := scheduler.NewStateSweepService(states, cfg)
	connectionResyncService := scheduler.NewConnectionResyncService(adDataRepo, syncService, cfg)

	if err := stateSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de states OAuth")
	} else {
		logrus.Info("Agendador de limpeza de states OAuth iniciado com sucesso")
	}

	if err := connectionResyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de re-sincronização de connections")
	} else {
		logrus.Info("Agendador de re-sincronização de connections iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connectionService,
		syncService,
		metricsService,
		stateSweepService,
		connectionResyncService,
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
