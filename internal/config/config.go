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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Google           Google           `mapstructure:",squash"`
	OAuth            OAuth            `mapstructure:",squash"`
	Sync             Sync             `mapstructure:",squash"`
	StateSweep       StateSweep       `mapstructure:",squash"`
	ConnectionResync ConnectionResync `mapstructure:",squash"`
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

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	RedirectURI string `mapstructure:"meta_redirect_uri"`
}

type Google struct {
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	RedirectURI  string `mapstructure:"google_redirect_uri"`
}

type OAuth struct {
	StateTTLMinutes int `mapstructure:"oauth_state_ttl_minutes"`
}

type Sync struct {
	LookbackDays        int `mapstructure:"sync_lookback_days"`
	RequestDelaySeconds int `mapstructure:"sync_request_delay_seconds"`
	MaxConcurrentJobs   int `mapstructure:"sync_max_concurrent_jobs"`
}

type StateSweep struct {
	CronSchedule string `mapstructure:"state_sweep_cron"`
	Enabled      bool   `mapstructure:"state_sweep_enabled"`
}

type ConnectionResync struct {
	CronSchedule        string `mapstructure:"connection_resync_cron"`
	RequestDelaySeconds int    `mapstructure:"connection_resync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"connection_resync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/speedfunnels")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_REDIRECT_URI", "http://localhost:8000/v1/integrations/meta/callback")

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:8000/v1/integrations/google/callback")

	viper.SetDefault("OAUTH_STATE_TTL_MINUTES", 10)

	// Defaults para a sincronização de dados de anúncio
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 7)         // 7 dias de janela de busca
	viper.SetDefault("SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 syncs concorrentes no agendador

	viper.SetDefault("STATE_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("STATE_SWEEP_ENABLED", true)

	viper.SetDefault("CONNECTION_RESYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CONNECTION_RESYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("CONNECTION_RESYNC_ENABLED", false)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

// loadEnvFile carrega o arquivo .env procurando nas localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
