package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ATELIER"

var ErrMissingRequired = errors.New("required configuration is missing")

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	S3         S3Config
	Auth       AuthConfig
	ImageProxy ImageProxyConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port              int
	TrustedProxyCIDRs []string
	UpstreamTimeout   time.Duration
	UploadTimeout     time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
	PresignTTL      time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type ImageProxyConfig struct {
	UserAgent    string
	MaxBytes     int64
	MaxPixels    int
	HostInterval time.Duration

	// AllowPrivateNetworks が無効な間はループバックやプライベートアドレスへ接続しない
	AllowPrivateNetworks bool
}

type LogConfig struct {
	Level string
}

// Load はカレントディレクトリのconfig.yaml、ATELIER_ で始まる環境変数、既定値の順に設定を解決する
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の変換に失敗しました: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// 環境変数だけで指定されたキーもUnmarshalで拾えるよう、全キーに既定値を登録する
func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.trustedproxycidrs", []string{})
	viper.SetDefault("server.upstreamtimeout", 15*time.Second)
	viper.SetDefault("server.uploadtimeout", 2*time.Minute)

	viper.SetDefault("database.host", "")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "")
	viper.SetDefault("database.sslmode", "require")

	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.accesskeyid", "")
	viper.SetDefault("s3.secretaccesskey", "")
	viper.SetDefault("s3.bucketname", "")
	viper.SetDefault("s3.region", "")
	viper.SetDefault("s3.publicbaseurl", "")
	viper.SetDefault("s3.presignttl", 7*24*time.Hour)

	viper.SetDefault("auth.jwtsecret", "")
	viper.SetDefault("auth.issuer", "")

	viper.SetDefault("imageproxy.useragent", "atelier-image-proxy/1.0")
	viper.SetDefault("imageproxy.maxbytes", int64(20<<20))
	viper.SetDefault("imageproxy.maxpixels", 40_000_000)
	viper.SetDefault("imageproxy.allowprivatenetworks", false)
	viper.SetDefault("imageproxy.hostinterval", time.Duration(0))

	viper.SetDefault("log.level", "info")
}

func (c *Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"database.host", c.Database.Host},
		{"database.user", c.Database.User},
		{"database.password", c.Database.Password},
		{"database.dbname", c.Database.DBName},
		{"redis.host", c.Redis.Host},
		{"s3.accesskeyid", c.S3.AccessKeyID},
		{"s3.secretaccesskey", c.S3.SecretAccessKey},
		{"s3.bucketname", c.S3.BucketName},
		{"s3.region", c.S3.Region},
		{"auth.jwtsecret", c.Auth.JWTSecret},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s, PublicBaseURL: %s, PresignTTL: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region, c.PublicBaseURL, c.PresignTTL)
}

func (c AuthConfig) String() string {
	return fmt.Sprintf("AuthConfig{JWTSecret: ***, Issuer: %s}", c.Issuer)
}
