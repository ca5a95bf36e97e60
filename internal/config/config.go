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
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	OpenAI                OpenAI                `mapstructure:",squash"`
	ClickUp               ClickUp               `mapstructure:",squash"`
	CommunicationReminder CommunicationReminder `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	SecretKey string `mapstructure:"secret_key"`
}

type OpenAI struct {
	URL    string `mapstructure:"openai_url"`
	APIKey string `mapstructure:"openai_api_key"`
	Model  string `mapstructure:"openai_model"`
}

type ClickUp struct {
	URL     string `mapstructure:"clickup_url"`
	APIKey  string `mapstructure:"clickup_api_key"`
	SpaceID string `mapstructure:"clickup_space_id"`
}

type CommunicationReminder struct {
	CronSchedule string `mapstructure:"communication_reminder_cron"`
	Enabled      bool   `mapstructure:"communication_reminder_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/launches")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("OPENAI_URL", "https://api.openai.com")
	viper.SetDefault("OPENAI_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")

	viper.SetDefault("CLICKUP_URL", "https://api.clickup.com/api/v2")
	viper.SetDefault("CLICKUP_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("CLICKUP_SPACE_ID", "")

	// Defaults para o lembrete diário do cronograma
	viper.SetDefault("COMMUNICATION_REMINDER_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("COMMUNICATION_REMINDER_ENABLED", false)    // Habilitar lembrete do cronograma

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
