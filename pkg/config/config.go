package config

import (
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	UnmarshalKey(key string, val interface{}) error
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("upstream.base_url", "UPSTREAM_BASE_URL")
	_ = cfg.BindEnv("upstream.timeout", "UPSTREAM_TIMEOUT")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("aws_access_key_id", "AWS_ACCESS_KEY_ID")
	_ = cfg.BindEnv("aws_secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = cfg.BindEnv("aws_region", "AWS_REGION")
	_ = cfg.BindEnv("aws_s3_bucket", "AWS_S3_BUCKET")
	_ = cfg.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	if addrs := cfg.GetString("redis.addrs"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}

	if cfg.GetString("server.port") == "" {
		cfg.Set("server.port", ":8080")
	}
	if cfg.GetString("upstream.timeout") == "" {
		cfg.Set("upstream.timeout", "15s")
	}

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetFloat64(key string) float64 {
	return c.cfg.GetFloat64(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetStringMap(key string) map[string]interface{} {
	return c.cfg.GetStringMap(key)
}

func (c *config) UnmarshalKey(key string, val interface{}) error {
	return c.cfg.UnmarshalKey(key, &val)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
