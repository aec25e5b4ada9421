package config

import (
	"fmt"
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	JWTSecret  string        // JWT署名シークレット
	JWTExpires time.Duration // アクセストークンの有効期限

	APIPrefix string // APIのパスプレフィックス（/api/v1）
	UploadDir string // 商品画像の保存先

	DatabaseURL string // 指定があればPOSTGRES_*より優先
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
}

// DSNはgormに渡す接続文字列を返す
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "8088"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIPrefix: getenv("API_PREFIX", "/api/v1"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("POSTGRES_HOST", "localhost"),
		DBPort:      getenv("POSTGRES_PORT", "5432"),
		DBUser:      getenv("POSTGRES_USER", "postgres"),
		DBPassword:  getenv("POSTGRES_PASSWORD", "postgres"),
		DBName:      getenv("POSTGRES_DB", "shopapp"),
		DBSSLMode:   getenv("POSTGRES_SSLMODE", "disable"),
	}

	// 必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	expires := getenv("JWT_EXPIRES", "72h")
	d, err := time.ParseDuration(expires)
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES must be a duration: %w", err)
	}
	if d <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES must be positive")
	}
	cfg.JWTExpires = d

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
