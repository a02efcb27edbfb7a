package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RabbitConfig struct {
	URL        string `yaml:"url"`
	Queue      string `yaml:"queue"`
	RPCTimeout string `yaml:"rpc_timeout"`
}

type TokenConfig struct {
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type OTPConfig struct {
	TTL         string `yaml:"ttl"`
	MaxRequests int    `yaml:"max_requests"`
	LockoutTTL  string `yaml:"lockout_ttl"`
	TestMode    bool   `yaml:"test_mode"`
	TestPhone   string `yaml:"test_phone"`
	TestCode    string `yaml:"test_code"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Rabbit   RabbitConfig   `yaml:"rabbitmq"`
	Tokens   TokenConfig    `yaml:"tokens"`
	OTP      OTPConfig      `yaml:"otp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RabbitURL       string
	RabbitQueue     string
	RPCTimeout      time.Duration
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	OTP_TTL         time.Duration
	OTP_MaxRequests int
	OTP_LockoutTTL  time.Duration
	OTP_TestMode    bool
	OTP_TestPhone   string
	OTP_TestCode    string
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	// A local .env is optional; environment overrides win either way.
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.Tokens.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid access token TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.Tokens.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	lockTTL, err := time.ParseDuration(configFile.OTP.LockoutTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP lockout TTL: %w", err)
	}

	rpcTimeout, err := time.ParseDuration(configFile.Rabbit.RPCTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid RPC timeout: %w", err)
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		RabbitURL:       env("RABBITMQ_URL", configFile.Rabbit.URL),
		RabbitQueue:     configFile.Rabbit.Queue,
		RPCTimeout:      rpcTimeout,
		AccessTTL:       accTTL,
		RefreshTTL:      refTTL,
		OTP_TTL:         otpTTL,
		OTP_MaxRequests: configFile.OTP.MaxRequests,
		OTP_LockoutTTL:  lockTTL,
		OTP_TestMode:    configFile.OTP.TestMode || env("OTP_TEST_MODE", "false") == "true",
		OTP_TestPhone:   env("OTP_TEST_PHONE", configFile.OTP.TestPhone),
		OTP_TestCode:    env("OTP_TEST_CODE", configFile.OTP.TestCode),
		TwilioSID:       env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:     env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:      env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
