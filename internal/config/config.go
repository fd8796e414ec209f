package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	sf "github.com/snowflakedb/gosnowflake"
	"github.com/spf13/viper"
)

const (
	DriverSnowflake = "snowflake"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Warehouse          Warehouse          `mapstructure:",squash"`
	Snowflake          Snowflake          `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	SQLite             SQLite             `mapstructure:",squash"`
	Sales              Sales              `mapstructure:",squash"`
	WarehouseHeartbeat WarehouseHeartbeat `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Warehouse struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"warehouse_driver"`
	QueryTimeout time.Duration `mapstructure:"warehouse_query_timeout"`
}

type Snowflake struct {
	Account   string `mapstructure:"snowflake_account"`
	User      string `mapstructure:"snowflake_user"`
	Password  string `mapstructure:"snowflake_password"`
	Warehouse string `mapstructure:"snowflake_warehouse"`
	Role      string `mapstructure:"snowflake_role"`
	Database  string `mapstructure:"snowflake_database"`
	Schema    string `mapstructure:"snowflake_schema"`
}

type Database struct {
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SQLite struct {
	Path string `mapstructure:"sqlite_path"`
}

// Sales define a tabela fato e o ano usados pela consulta do painel
type Sales struct {
	Table string `mapstructure:"sales_table"`
	Year  int    `mapstructure:"sales_year"`
}

type WarehouseHeartbeat struct {
	CronSchedule string `mapstructure:"warehouse_heartbeat_cron"`
	Enabled      bool   `mapstructure:"warehouse_heartbeat_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("WAREHOUSE_DRIVER", DriverSnowflake)
	viper.SetDefault("WAREHOUSE_QUERY_TIMEOUT", "30s")

	viper.SetDefault("SNOWFLAKE_ACCOUNT", "")
	viper.SetDefault("SNOWFLAKE_USER", "")
	viper.SetDefault("SNOWFLAKE_PASSWORD", "")
	viper.SetDefault("SNOWFLAKE_WAREHOUSE", "")
	viper.SetDefault("SNOWFLAKE_ROLE", "")
	viper.SetDefault("SNOWFLAKE_DATABASE", "EVO_DEMO")
	viper.SetDefault("SNOWFLAKE_SCHEMA", "IOWA_LIQUOR_SALES")

	viper.SetDefault("DATABASE_URL", "localhost:5432/warehouse?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SQLITE_PATH", "liquor.db")

	viper.SetDefault("SALES_TABLE", "EVO_DEMO.IOWA_LIQUOR_SALES.IOWA_LIQUOR_SALES")
	viper.SetDefault("SALES_YEAR", 2025)

	viper.SetDefault("WAREHOUSE_HEARTBEAT_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("WAREHOUSE_HEARTBEAT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Warehouse.Driver = strings.ToLower(strings.TrimSpace(config.Warehouse.Driver))

	dsn, err := BuildDSN(config)
	if err != nil {
		return nil, err
	}
	config.Warehouse.DSN = dsn

	return config, nil
}

// BuildDSN monta a string de conexão de acordo com o driver configurado
func BuildDSN(config *Config) (string, error) {
	switch config.Warehouse.Driver {
	case DriverSnowflake:
		dsn, err := sf.DSN(&sf.Config{
			Account:   config.Snowflake.Account,
			User:      config.Snowflake.User,
			Password:  config.Snowflake.Password,
			Warehouse: config.Snowflake.Warehouse,
			Role:      config.Snowflake.Role,
			Database:  config.Snowflake.Database,
			Schema:    config.Snowflake.Schema,
		})
		if err != nil {
			return "", fmt.Errorf("config: erro ao montar DSN do Snowflake: %w", err)
		}
		return dsn, nil
	case DriverPostgres:
		return fmt.Sprintf(
			"%s://%s@%s",
			DriverPostgres,
			url.UserPassword(config.Database.User, config.Database.Password).String(),
			config.Database.URL,
		), nil
	case DriverSQLite:
		if config.SQLite.Path == "" {
			return "", fmt.Errorf("config: SQLITE_PATH não pode ser vazio")
		}
		return config.SQLite.Path, nil
	default:
		return "", fmt.Errorf("config: driver de warehouse desconhecido: %q", config.Warehouse.Driver)
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
