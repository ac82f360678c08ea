package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Storage    StorageConfig
	OpenAI     OpenAIConfig
	Completion CompletionConfig
	Session    SessionConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	// BasePath mounts every route under a subdirectory (e.g. "/app-subdirectory").
	BasePath string `mapstructure:"base_path"`
	// IsConnect is true when running on Posit Connect (CONNECT_SERVER is set).
	IsConnect bool `mapstructure:"-"`
}

// DeploymentLabel returns a human-readable name for the hosting environment.
func (s *ServerConfig) DeploymentLabel() string {
	if s.IsConnect {
		return "Posit Connect"
	}
	return "Development"
}

// UploadConfig holds upload limits and the local upload folder.
type UploadConfig struct {
	Dir           string `mapstructure:"dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// StorageConfig selects where uploaded files are kept.
type StorageConfig struct {
	Provider string   `mapstructure:"provider"`
	S3       S3Config `mapstructure:"s3"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// OpenAIConfig holds chat completion API settings.
type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	APIURL      string  `mapstructure:"api_url"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	// Temperature is nil when unset so an explicit 0 survives.
	Temperature *float32 `mapstructure:"temperature"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
}

// CompletionConfig holds model fan-out settings.
type CompletionConfig struct {
	// Concurrency is the number of model calls in flight at once. 1 keeps calls sequential.
	Concurrency int `mapstructure:"concurrency"`
}

// SessionConfig holds session cookie and expiry settings.
type SessionConfig struct {
	CookieName    string        `mapstructure:"cookie_name"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the GENAI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GENAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.base_path", "")

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_file_size_mb", 100)

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "genai-uploads")
	v.SetDefault("storage.s3.endpoint", "")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.api_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("openai.max_tokens", 2000)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.timeout_secs", 120)

	v.SetDefault("completion.concurrency", 1)

	// Session defaults
	v.SetDefault("session.cookie_name", "genai_session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.sweep_interval", "10m")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys. The unprefixed
	// names are the legacy deployment variables.
	envBindings := map[string][]string{
		"server.port":             {"GENAI_SERVER_PORT"},
		"server.read_timeout":     {"GENAI_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"GENAI_SERVER_WRITE_TIMEOUT"},
		"server.environment":      {"GENAI_SERVER_ENVIRONMENT"},
		"server.base_path":        {"GENAI_SERVER_BASE_PATH", "CONNECT_URL_PATH"},
		"upload.dir":              {"GENAI_UPLOAD_DIR", "UPLOAD_FOLDER"},
		"upload.max_file_size_mb": {"GENAI_UPLOAD_MAX_FILE_SIZE_MB"},
		"storage.provider":        {"GENAI_STORAGE_PROVIDER"},
		"storage.s3.region":       {"GENAI_STORAGE_S3_REGION"},
		"storage.s3.bucket":       {"GENAI_STORAGE_S3_BUCKET"},
		"storage.s3.endpoint":     {"GENAI_STORAGE_S3_ENDPOINT"},
		"storage.s3.access_key":   {"GENAI_STORAGE_S3_ACCESS_KEY"},
		"storage.s3.secret_key":   {"GENAI_STORAGE_S3_SECRET_KEY"},
		"openai.api_key":          {"GENAI_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"openai.api_url":          {"GENAI_OPENAI_API_URL", "OPENAI_API_URL"},
		"openai.max_tokens":       {"GENAI_OPENAI_MAX_TOKENS"},
		"openai.temperature":      {"GENAI_OPENAI_TEMPERATURE"},
		"openai.timeout_secs":     {"GENAI_OPENAI_TIMEOUT_SECS"},
		"completion.concurrency":  {"GENAI_COMPLETION_CONCURRENCY"},
		"session.cookie_name":     {"GENAI_SESSION_COOKIE_NAME"},
		"session.ttl":             {"GENAI_SESSION_TTL"},
		"session.sweep_interval":  {"GENAI_SESSION_SWEEP_INTERVAL"},
		"cors.allowed_origins":    {"GENAI_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it unless GENAI_SERVER_PORT is explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GENAI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	_, isConnect := os.LookupEnv("CONNECT_SERVER")
	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		BasePath:     normalizeBasePath(v.GetString("server.base_path")),
		IsConnect:    isConnect,
	}
	cfg.Upload = UploadConfig{
		Dir:           v.GetString("upload.dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Storage = StorageConfig{
		Provider: strings.ToLower(v.GetString("storage.provider")),
		S3: S3Config{
			Region:    v.GetString("storage.s3.region"),
			Bucket:    v.GetString("storage.s3.bucket"),
			Endpoint:  v.GetString("storage.s3.endpoint"),
			AccessKey: v.GetString("storage.s3.access_key"),
			SecretKey: v.GetString("storage.s3.secret_key"),
		},
	}
	temperature := float32(v.GetFloat64("openai.temperature"))
	cfg.OpenAI = OpenAIConfig{
		APIKey:      v.GetString("openai.api_key"),
		APIURL:      v.GetString("openai.api_url"),
		MaxTokens:   v.GetInt("openai.max_tokens"),
		Temperature: &temperature,
		TimeoutSecs: v.GetInt("openai.timeout_secs"),
	}
	cfg.Completion = CompletionConfig{
		Concurrency: v.GetInt("completion.concurrency"),
	}
	cfg.Session = SessionConfig{
		CookieName:    v.GetString("session.cookie_name"),
		TTL:           v.GetDuration("session.ttl"),
		SweepInterval: v.GetDuration("session.sweep_interval"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}

// normalizeBasePath turns "app/", "/app/" and "/app" into "/app"; "" and "/" become "".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
