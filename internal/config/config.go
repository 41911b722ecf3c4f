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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Evolution       Evolution       `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	StatsSync       StatsSync       `mapstructure:",squash"`
	PendingReminder PendingReminder `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

// Evolution é a configuração do gateway de WhatsApp (Evolution API)
type Evolution struct {
	URL    string `mapstructure:"evolution_url"`
	APIKey string `mapstructure:"evolution_api_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// StatsSync configura o recomputo noturno dos contadores de mensagens
type StatsSync struct {
	CronSchedule string `mapstructure:"stats_sync_cron"`
	LookbackDays int    `mapstructure:"stats_sync_lookback_days"`
	Enabled      bool   `mapstructure:"stats_sync_enabled"`
}

// PendingReminder configura a varredura de mensagens pendentes há mais
// tempo que o limite
type PendingReminder struct {
	CronSchedule   string `mapstructure:"pending_reminder_cron"`
	ThresholdHours int    `mapstructure:"pending_reminder_threshold_hours"`
	Enabled        bool   `mapstructure:"pending_reminder_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("EVOLUTION_URL", "https://api.zaytechsystems.com")
	viper.SetDefault("EVOLUTION_API_KEY", "your_api_key")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para o recomputo noturno dos contadores
	viper.SetDefault("STATS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("STATS_SYNC_LOOKBACK_DAYS", 2)  // Recalcula ontem e hoje
	viper.SetDefault("STATS_SYNC_ENABLED", true)

	// Defaults para o lembrete de pendências
	viper.SetDefault("PENDING_REMINDER_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("PENDING_REMINDER_THRESHOLD_HOURS", 4)
	viper.SetDefault("PENDING_REMINDER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
