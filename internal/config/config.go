package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Fees           Fees           `mapstructure:",squash"`
	OCR            OCR            `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	InvoiceOCRSync InvoiceOCRSync `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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
	Migrate  bool   `mapstructure:"database_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

// Fees guarda as taxas aplicadas quando uma venda é criada sem taxas explícitas.
type Fees struct {
	CardPercent     float64 `mapstructure:"fee_card_percent"`
	CardFixed       float64 `mapstructure:"fee_card_fixed"`
	SatispayPercent float64 `mapstructure:"fee_satispay_percent"`
	SatispayFixed   float64 `mapstructure:"fee_satispay_fixed"`
}

type OCR struct {
	TesseractPath string        `mapstructure:"ocr_tesseract_path"`
	Language      string        `mapstructure:"ocr_language"`
	MinWidth      int           `mapstructure:"ocr_min_width"`
	Timeout       time.Duration `mapstructure:"ocr_timeout"`
}

type Storage struct {
	InvoiceDir     string `mapstructure:"invoice_storage_dir"`
	UploadMaxBytes int64  `mapstructure:"upload_max_bytes"`
}

type InvoiceOCRSync struct {
	CronSchedule string `mapstructure:"invoice_ocr_sync_cron"`
	BatchSize    int    `mapstructure:"invoice_ocr_sync_batch_size"`
	Enabled      bool   `mapstructure:"invoice_ocr_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gestionale?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	// Taxas padrão de POS e Satispay
	viper.SetDefault("FEE_CARD_PERCENT", 1.95)
	viper.SetDefault("FEE_CARD_FIXED", 0.15)
	viper.SetDefault("FEE_SATISPAY_PERCENT", 1.00)
	viper.SetDefault("FEE_SATISPAY_FIXED", 0.00)

	viper.SetDefault("OCR_TESSERACT_PATH", "tesseract")
	viper.SetDefault("OCR_LANGUAGE", "ita+eng")
	viper.SetDefault("OCR_MIN_WIDTH", 1000)
	viper.SetDefault("OCR_TIMEOUT", "60s")

	viper.SetDefault("INVOICE_STORAGE_DIR", "data/invoices")
	viper.SetDefault("UPLOAD_MAX_BYTES", 20<<20)

	viper.SetDefault("INVOICE_OCR_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("INVOICE_OCR_SYNC_BATCH_SIZE", 20)
	viper.SetDefault("INVOICE_OCR_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("APP_ENV", "development")
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

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
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
