package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (optional tombstone log)
	MongoDB MongoDBConfig `json:"mongodb"`

	// Auth Configuration
	Auth AuthConfig `json:"auth"`

	// Realtime Configuration
	Realtime RealtimeConfig `json:"realtime"`

	// Sync Configuration
	Sync SyncConfig `json:"sync"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	HTTPPort     string `json:"http_port"`
	GRPCPort     string `json:"grpc_port"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host       string `json:"host"`
	Port       string `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Database   string `json:"database"`
	Collection string `json:"collection"`
}

// AuthConfig holds the shared secret used to verify connection tokens.
type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
}

// RealtimeConfig tunes the per-connection runtime.
type RealtimeConfig struct {
	SendBuffer      int           `json:"send_buffer"`
	PingPeriod      time.Duration `json:"ping_period"`
	PongWait        time.Duration `json:"pong_wait"`
	WriteWait       time.Duration `json:"write_wait"`
	MaxFrameBytes   int64         `json:"max_frame_bytes"`
	FramesPerSecond float64       `json:"frames_per_second"`
	FrameBurst      int           `json:"frame_burst"`
	AllowedOrigins  string        `json:"allowed_origins"`
}

type SyncConfig struct {
	PageSize         int    `json:"page_size"`
	TombstoneBackend string `json:"tombstone_backend"` // mysql, mongo
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			HTTPPort:     getEnvOrDefault("HTTP_PORT", "8080"),
			GRPCPort:     getEnvOrDefault("GRPC_PORT", "7005"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "gosocial"),
			Password:     getEnvOrDefault("DB_PASSWORD", "gosocial123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "gosocial"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:       getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:       getEnvOrDefault("MONGO_PORT", "27017"),
			Username:   getEnvOrDefault("MONGO_USER", ""),
			Password:   getEnvOrDefault("MONGO_PASSWORD", ""),
			Database:   getEnvOrDefault("MONGO_DB", "gosocial"),
			Collection: getEnvOrDefault("MONGO_TOMBSTONE_COLLECTION", "tombstones"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", ""),
			Issuer:    getEnvOrDefault("JWT_ISSUER", "gosocial"),
		},
		Realtime: RealtimeConfig{
			SendBuffer:      getEnvInt("WS_SEND_BUFFER", 256),
			PingPeriod:      getEnvDuration("WS_PING_PERIOD", 54*time.Second),
			PongWait:        getEnvDuration("WS_PONG_WAIT", 60*time.Second),
			WriteWait:       getEnvDuration("WS_WRITE_WAIT", 10*time.Second),
			MaxFrameBytes:   int64(getEnvInt("WS_MAX_FRAME_BYTES", 64*1024)),
			FramesPerSecond: getEnvFloat("WS_FRAMES_PER_SECOND", 20),
			FrameBurst:      getEnvInt("WS_FRAME_BURST", 40),
			AllowedOrigins:  getEnvOrDefault("ALLOWED_ORIGINS", "*"),
		},
		Sync: SyncConfig{
			PageSize:         getEnvInt("SYNC_PAGE_SIZE", 500),
			TombstoneBackend: getEnvOrDefault("TOMBSTONE_BACKEND", "mysql"),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", m.Username, m.Password, m.Host, m.Port, m.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", m.Host, m.Port, m.Database)
}

// UseMongoTombstones reports whether deletions are logged to MongoDB instead of MySQL.
func (cfg *Config) UseMongoTombstones() bool {
	return cfg.Sync.TombstoneBackend == "mongo"
}

// Origins splits AllowedOrigins on commas.
func (rc RealtimeConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(rc.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid integer for %s=%q, using %d", key, v, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid number for %s=%q, using %v", key, v, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid duration for %s=%q, using %v", key, v, defaultValue)
	}
	return defaultValue
}
