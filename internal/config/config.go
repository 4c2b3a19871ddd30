package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

// ContractsConfig configures the contracts service: the orchestration core,
// its downstream collaborator endpoints and the artifact directory.
type ContractsConfig struct {
	Environment     string
	HTTP            HTTPConfig
	FairServiceURL  string
	DirectoryURL    string
	MailServiceURL  string
	ArtifactsDir    string
	ClientTimeout   time.Duration
	FallbackContact string
}

// FairConfig configures the hall availability service.
type FairConfig struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
}

// MailConfig configures the mail service.
type MailConfig struct {
	Environment    string
	HTTP           HTTPConfig
	SMTP           SMTPConfig
	DefaultFrom    string
	SimulationMode bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()
	return v
}

func environment(v *viper.Viper) string {
	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	return env
}

func httpConfig(v *viper.Viper, defaultPort int) HTTPConfig {
	cfg := HTTPConfig{
		Host: v.GetString("HTTP_HOST"),
		Port: v.GetInt("HTTP_PORT"),
	}
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return cfg
}

// LoadContracts reads the contracts-service configuration. Every key has a
// default, so a bare environment boots a working local setup.
func LoadContracts() (*ContractsConfig, error) {
	v := newViper()

	cfg := &ContractsConfig{
		Environment:     environment(v),
		HTTP:            httpConfig(v, 8080),
		FairServiceURL:  v.GetString("FAIR_SERVICE_URL"),
		DirectoryURL:    v.GetString("CUSTOMER_SERVICE_URL"),
		MailServiceURL:  v.GetString("MAIL_SERVICE_URL"),
		ArtifactsDir:    v.GetString("CONTRACTS_DIR"),
		ClientTimeout:   v.GetDuration("CLIENT_TIMEOUT"),
		FallbackContact: v.GetString("FALLBACK_CONTACT_EMAIL"),
	}

	if cfg.FairServiceURL == "" {
		cfg.FairServiceURL = "http://fair-service:8081"
	}
	if cfg.DirectoryURL == "" {
		cfg.DirectoryURL = "http://customer-service:8082"
	}
	if cfg.MailServiceURL == "" {
		cfg.MailServiceURL = "http://mail-service:8083"
	}
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = "./contracts"
	}
	if cfg.ClientTimeout == 0 {
		cfg.ClientTimeout = 5 * time.Second
	}
	if cfg.FallbackContact == "" {
		cfg.FallbackContact = "exhibitors@fairhall.local"
	}
	return cfg, nil
}

// LoadFair reads the fair-service configuration. DB_DSN is required.
func LoadFair() (*FairConfig, error) {
	v := newViper()

	cfg := &FairConfig{
		Environment: environment(v),
		HTTP:        httpConfig(v, 8081),
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
	}

	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 10
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 5
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	return cfg, nil
}

// LoadMail reads the mail-service configuration. SMTP_HOST is required
// unless simulation mode is on.
func LoadMail() (*MailConfig, error) {
	v := newViper()
	v.SetDefault("MAIL_SIMULATION", true)
	v.SetDefault("SMTP_USE_TLS", true)

	cfg := &MailConfig{
		Environment: environment(v),
		HTTP:        httpConfig(v, 8083),
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			UseTLS:   v.GetBool("SMTP_USE_TLS"),
		},
		DefaultFrom:    v.GetString("DEFAULT_FROM_EMAIL"),
		SimulationMode: v.GetBool("MAIL_SIMULATION"),
	}

	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.DefaultFrom == "" {
		cfg.DefaultFrom = "noreply@fairhall.local"
	}
	if !cfg.SimulationMode && cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST is required when MAIL_SIMULATION is off")
	}
	return cfg, nil
}
