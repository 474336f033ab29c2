package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Defaults applied when the loyalty section leaves them unset.
const (
	defaultMaxStamps       = 10
	defaultReviewMaxLength = 100
	defaultReportMaxLength = 500
	defaultAccessTokenTTL  = 12 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Loyalty configures the stamp/coupon policy surface.
	Loyalty *LoyaltyConfig `json:"loyalty" yaml:"loyalty"`

	// QRCode configuration for coupon presentation codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoyaltyConfig defines deployment policy for the loyalty engine.
type LoyaltyConfig struct {
	// AllowGuestLogin lets unregistered phone numbers resolve to a guest
	// identity instead of being rejected.
	AllowGuestLogin bool `json:"allowGuestLogin" yaml:"allowGuestLogin"`

	// AdminSecretHash is the bcrypt hash of the shared redemption secret.
	AdminSecretHash string `json:"adminSecretHash" yaml:"adminSecretHash"`

	MaxStamps       int `json:"maxStamps" yaml:"maxStamps"`
	ReviewMaxLength int `json:"reviewMaxLength" yaml:"reviewMaxLength"`
	ReportMaxLength int `json:"reportMaxLength" yaml:"reportMaxLength"`

	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf, with environment variable
// overrides (HTTP_PORT -> http.port).
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// POSTGRES_HOST -> postgres.host; unmarshal below matches
			// struct fields case-insensitively.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Loyalty == nil {
		cfg.Loyalty = &LoyaltyConfig{AllowGuestLogin: true}
	}
	if cfg.Loyalty.MaxStamps <= 0 {
		cfg.Loyalty.MaxStamps = defaultMaxStamps
	}
	if cfg.Loyalty.ReviewMaxLength <= 0 {
		cfg.Loyalty.ReviewMaxLength = defaultReviewMaxLength
	}
	if cfg.Loyalty.ReportMaxLength <= 0 {
		cfg.Loyalty.ReportMaxLength = defaultReportMaxLength
	}
	if cfg.Loyalty.AccessTokenTTL <= 0 {
		cfg.Loyalty.AccessTokenTTL = defaultAccessTokenTTL
	}

	return cfg, nil
}
