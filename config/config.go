package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	PartnerOne = "partner1"
	PartnerTwo = "partner2"

	QueueDriverRedis  = "redis"
	QueueDriverMemory = "memory"
)

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Stream   StreamConfig
}

type AppConfig struct {
	Port        string
	Partner     string
	QueueDriver string
	// IdempotencyTTL 是完成結果的保存時間，IdempotencyPendingTTL 是處理中標記的存活時間
	IdempotencyTTL        time.Duration
	IdempotencyPendingTTL time.Duration
	ShutdownTimeout       time.Duration
}

// AuthConfig 決定 x-api-token 的驗證方式：JWTSecret > APITokenHash > APIToken
type AuthConfig struct {
	APIToken     string
	APITokenHash string
	JWTSecret    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// DSN 一律以 UTC 連線，timestamptz 讀回來不受主機時區影響
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=UTC",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type StreamConfig struct {
	ClaimMinIdleTime   time.Duration
	MaxRetryCount      int
	ReadGroupBlockTime time.Duration
}

// Current 保存最近一次 LoadConfig 的結果
var Current *Config

// LoadConfig 讀取 .env（若存在）後再從環境變數組出設定
func LoadConfig() *Config {
	// .env 是選用的，正式環境直接注入環境變數
	_ = godotenv.Load()

	Current = &Config{
		App:      GetAppConfig(),
		Auth:     GetAuthConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Stream:   GetStreamConfig(),
	}

	return Current
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"), // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 10,
		MinConns: 1,
	}

	testRedisConfig := RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnv("TEST_REDIS_PORT", "6380"), // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		App: AppConfig{
			Port:                  "0",
			Partner:               PartnerTwo,
			QueueDriver:           QueueDriverMemory,
			IdempotencyTTL:        time.Minute,
			IdempotencyPendingTTL: 200 * time.Millisecond,
			ShutdownTimeout:       time.Second,
		},
		Auth: AuthConfig{
			APIToken: "test-token",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Stream: StreamConfig{
			ClaimMinIdleTime:   200 * time.Millisecond,
			MaxRetryCount:      3,
			ReadGroupBlockTime: 100 * time.Millisecond,
		},
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:                  getEnv("PORT", "8080"),
		Partner:               getEnv("PARTNER", PartnerOne),
		QueueDriver:           getEnv("QUEUE_DRIVER", QueueDriverRedis),
		IdempotencyTTL:        getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		IdempotencyPendingTTL: getEnvDuration("IDEMPOTENCY_PENDING_TTL", 30*time.Second),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		APIToken:     os.Getenv("API_TOKEN"),
		APITokenHash: os.Getenv("API_TOKEN_HASH"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
		MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func GetStreamConfig() StreamConfig {
	return StreamConfig{
		ClaimMinIdleTime:   getEnvDuration("STREAM_CLAIM_MIN_IDLE", 5*time.Second),
		MaxRetryCount:      getEnvInt("STREAM_MAX_RETRY", 5),
		ReadGroupBlockTime: getEnvDuration("STREAM_BLOCK_TIME", 2*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}
