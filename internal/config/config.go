package config

import (
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type S3Config struct {
	Endpoint         string `mapstructure:"endpoint"`
	Region           string `mapstructure:"region"`
	Bucket           string `mapstructure:"bucket"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	UsePathStyle     bool   `mapstructure:"use_path_style"`
	PresignExpireSec int    `mapstructure:"presign_expire_sec"`
}

type SupabaseConfig struct {
	ProjectRef      string `mapstructure:"project_ref"`
	APIKey          string `mapstructure:"api_key"`
	AuthCacheTTLSec int    `mapstructure:"auth_cache_ttl_sec"`
}

type AIConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	APIKey          string `mapstructure:"api_key"`
	Model           string `mapstructure:"model"`
	MaxTokens       int    `mapstructure:"max_tokens"`
	MaxPromptTokens int    `mapstructure:"max_prompt_tokens"`
}

type TelemetryConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OtlpEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	S3        S3Config        `mapstructure:"s3"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	AI        AIConfig        `mapstructure:"ai"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Load reads configuration from an optional config.yaml plus environment
// variables (PH_ prefix, dots mapped to underscores, e.g. PH_DATABASE_DSN).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "projects-hub-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("log.level", "info")

	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=projects_hub port=5432 sslmode=disable")
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.enable_tls", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.enable_tls", false)

	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "project-assets")
	v.SetDefault("s3.use_path_style", false)
	v.SetDefault("s3.presign_expire_sec", 3600)

	v.SetDefault("supabase.auth_cache_ttl_sec", 300)

	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.model", "meta-llama/llama-3.1-8b-instruct:free")
	v.SetDefault("ai.max_tokens", 500)
	v.SetDefault("ai.max_prompt_tokens", 4096)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.sample_ratio", 1.0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/projects-hub")

	v.SetEnvPrefix("PH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
