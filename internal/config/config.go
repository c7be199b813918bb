package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Bling       Bling       `mapstructure:",squash"`
	Nuvemshop   Nuvemshop   `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Insights    Insights    `mapstructure:",squash"`
	InsightSync InsightSync `mapstructure:",squash"`

	// Tokens de acesso ao Bling por loja, indexados pelo secret_name da
	// conta. Preenchido a partir do ambiente, nunca versionado.
	BlingMultiClient map[string]Bling `mapstructure:"-"`
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

type Bling struct {
	URL         string `mapstructure:"bling_url"`
	AccessToken string `mapstructure:"bling_access_token"`
}

type Nuvemshop struct {
	URL         string `mapstructure:"nuvemshop_url"`
	AccessToken string `mapstructure:"nuvemshop_access_token"`
	UserAgent   string `mapstructure:"nuvemshop_user_agent"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Insights struct {
	// Janela histórica, em dias, usada para decidir se um cliente do
	// período é novo ou recorrente.
	HistoryDays int `mapstructure:"insights_history_days"`

	// Vendedores tratados como sempre-B2B, separados por vírgula. Lista
	// mantida pela operação, não recalculada.
	B2BSellers []string `mapstructure:"b2b_sellers"`
}

type InsightSync struct {
	CronSchedule        string `mapstructure:"insight_sync_cron"`
	LookbackDays        int    `mapstructure:"insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"insight_sync_enabled"`

	// Snapshots mais antigos que isso são apagados ao final de cada
	// sincronização. Zero desabilita a limpeza.
	RetentionDays int `mapstructure:"insight_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BLING_URL", "https://api.bling.com.br/Api/v3")
	viper.SetDefault("BLING_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("NUVEMSHOP_URL", "https://api.nuvemshop.com.br/v1")
	viper.SetDefault("NUVEMSHOP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("NUVEMSHOP_USER_AGENT", "commerce-insights-api (suporte@vfg2006.dev)")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("INSIGHTS_HISTORY_DAYS", 365)
	viper.SetDefault("B2B_SELLERS", "")

	viper.SetDefault("INSIGHT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)
	viper.SetDefault("INSIGHT_SYNC_RETENTION_DAYS", 0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	// Tokens por loja: variáveis BLING_TOKEN_<SECRET_NAME> viram entradas
	// do multi client, com o secret_name em minúsculas como chave.
	config.BlingMultiClient = make(map[string]Bling)
	for _, pair := range os.Environ() {
		name, value, found := strings.Cut(pair, "=")
		if !found || !strings.HasPrefix(name, "BLING_TOKEN_") {
			continue
		}

		secretName := strings.ToLower(strings.TrimPrefix(name, "BLING_TOKEN_"))
		config.BlingMultiClient[secretName] = Bling{
			URL:         config.Bling.URL,
			AccessToken: value,
		}
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

// Carrega o .env das localizações usuais em desenvolvimento local.
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, seguindo só com o ambiente")
}
