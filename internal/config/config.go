package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Snapchat     Snapchat     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Provisioning Provisioning `mapstructure:",squash"`
	TokenRefresh TokenRefresh `mapstructure:",squash"`
	RunRetention RunRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL           string `mapstructure:"redis_url"`
	StatusChannel string `mapstructure:"redis_status_channel"`
}

// Enabled reports whether status events should be published.
func (r Redis) Enabled() bool {
	return r.URL != ""
}

type Snapchat struct {
	APIURL         string        `mapstructure:"snapchat_api_url"`
	AuthURL        string        `mapstructure:"snapchat_auth_url"`
	ClientID       string        `mapstructure:"snapchat_client_id"`
	ClientSecret   string        `mapstructure:"snapchat_client_secret"`
	RefreshToken   string        `mapstructure:"snapchat_refresh_token"`
	AccessToken    string        `mapstructure:"snapchat_access_token"`
	RequestTimeout time.Duration `mapstructure:"snapchat_request_timeout"`
}

type Auth struct {
	SecretKey            string        `mapstructure:"secret_key"`
	OperatorEmail        string        `mapstructure:"operator_email"`
	OperatorPasswordHash string        `mapstructure:"operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type Provisioning struct {
	CountryCode string `mapstructure:"provisioning_country_code"`
}

type TokenRefresh struct {
	CronSchedule string `mapstructure:"token_refresh_cron"`
	Enabled      bool   `mapstructure:"token_refresh_enabled"`
}

type RunRetention struct {
	CronSchedule string        `mapstructure:"run_retention_cron"`
	MaxAge       time.Duration `mapstructure:"run_retention_max_age"`
	Enabled      bool          `mapstructure:"run_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/snapchat_ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_STATUS_CHANNEL", "provisioning:status")

	viper.SetDefault("SNAPCHAT_API_URL", "https://adsapi.snapchat.com/v1")
	viper.SetDefault("SNAPCHAT_AUTH_URL", "https://accounts.snapchat.com/login/oauth2/access_token")
	viper.SetDefault("SNAPCHAT_CLIENT_ID", "")
	viper.SetDefault("SNAPCHAT_CLIENT_SECRET", "")
	viper.SetDefault("SNAPCHAT_REFRESH_TOKEN", "")
	viper.SetDefault("SNAPCHAT_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("SNAPCHAT_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("OPERATOR_EMAIL", "")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("PROVISIONING_COUNTRY_CODE", "us")

	// Snap access tokens live for 30 minutes
	viper.SetDefault("TOKEN_REFRESH_CRON", "*/20 * * * *")
	viper.SetDefault("TOKEN_REFRESH_ENABLED", true)

	viper.SetDefault("RUN_RETENTION_CRON", "0 * * * *")
	viper.SetDefault("RUN_RETENTION_MAX_AGE", "24h")
	viper.SetDefault("RUN_RETENTION_ENABLED", true)

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
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env read by viper")
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

	config.Snapchat.APIURL = strings.TrimSuffix(config.Snapchat.APIURL, "/")
	config.Provisioning.CountryCode = strings.ToLower(config.Provisioning.CountryCode)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("trying to load .env from: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
