package config

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Store    StoreConfig    `mapstructure:"store"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	Shipping ShippingConfig `mapstructure:"shipping"`
	PayFast  PayFastConfig  `mapstructure:"payfast"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Mail     MailConfig     `mapstructure:"mail"`
	OSS      OSSConfig      `mapstructure:"oss"`
}

type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"` // public URL used for gateway callbacks
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
}

// Enabled reports whether a database backend is configured.
// When false the process falls back to the flat-file store.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type StoreConfig struct {
	Dir string `mapstructure:"dir"` // directory for the flat-file collections
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire int64  `mapstructure:"expire"` // hours
}

type AppConfig struct {
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type ShippingConfig struct {
	FreeThreshold float64 `mapstructure:"free_threshold"` // subtotal above which shipping is free
	DefaultFee    float64 `mapstructure:"default_fee"`
}

type PayFastConfig struct {
	MerchantID  string `mapstructure:"merchant_id"`
	MerchantKey string `mapstructure:"merchant_key"`
	Passphrase  string `mapstructure:"passphrase"`
	Host        string `mapstructure:"host"` // sandbox.payfast.co.za or www.payfast.co.za
	ReturnURL   string `mapstructure:"return_url"`
	CancelURL   string `mapstructure:"cancel_url"`
	NotifyURL   string `mapstructure:"notify_url"`
}

type StripeConfig struct {
	SecretKey        string  `mapstructure:"secret_key"`
	Currency         string  `mapstructure:"currency"`          // configured shop currency, e.g. "pkr"
	FallbackCurrency string  `mapstructure:"fallback_currency"` // used when the shop currency is unsupported
	PKRToUSDRate     float64 `mapstructure:"pkr_to_usd_rate"`
	MinChargeUSD     float64 `mapstructure:"min_charge_usd"`
	SuccessURL       string  `mapstructure:"success_url"`
	CancelURL        string  `mapstructure:"cancel_url"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
}

var GlobalConfig Config

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" || c.JWT.Secret == "your_super_secret_key" {
		return errors.New("please set a secure JWT secret")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("JWT secret should be at least 32 characters")
	}

	// Database is optional: without it the flat-file store answers every call.
	if c.Database.Enabled() {
		if c.Database.User == "" || c.Database.DBName == "" {
			return errors.New("database configuration is incomplete")
		}
	} else if c.Store.Dir == "" {
		return errors.New("either database or store.dir must be configured")
	}

	if c.Shipping.FreeThreshold < 0 || c.Shipping.DefaultFee < 0 {
		return errors.New("shipping configuration must be non-negative")
	}

	// The fallback retry divides the order total by this rate.
	if c.Stripe.FallbackCurrency != "" && c.Stripe.PKRToUSDRate <= 0 {
		return errors.New("stripe pkr_to_usd_rate must be positive when a fallback currency is set")
	}

	return nil
}

// LoadConfig reads the yaml config and environment overrides into GlobalConfig.
func LoadConfig() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	configName := "config"
	if env != "" && env != "dev" {
		configName = "config." + env
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("jwt.expire", 24)
	viper.SetDefault("store.dir", "./data")
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("shipping.free_threshold", 5000)
	viper.SetDefault("shipping.default_fee", 200)
	viper.SetDefault("stripe.currency", "pkr")
	viper.SetDefault("stripe.fallback_currency", "usd")
	viper.SetDefault("stripe.pkr_to_usd_rate", 280)
	viper.SetDefault("stripe.min_charge_usd", 0.5)
	viper.SetDefault("payfast.host", "sandbox.payfast.co.za")
	viper.SetDefault("mail.port", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Config file not found, using defaults or env vars: %v", err)
	}

	viper.AutomaticEnv()

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// Manual overrides for deployment environments where viper cannot map
	// flat env vars onto the nested structure.
	if host := os.Getenv("DB_HOST"); host != "" {
		GlobalConfig.Database.Host = host
	}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		GlobalConfig.Redis.Addr = redisAddr
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		GlobalConfig.JWT.Secret = jwtSecret
	}
	if stripeKey := os.Getenv("STRIPE_SECRET_KEY"); stripeKey != "" {
		GlobalConfig.Stripe.SecretKey = stripeKey
	}
	if pfKey := os.Getenv("PAYFAST_MERCHANT_KEY"); pfKey != "" {
		GlobalConfig.PayFast.MerchantKey = pfKey
	}

	if err := GlobalConfig.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Configuration loaded and validated successfully. Environment: %s", GlobalConfig.App.Env)
}
