package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout_seconds"`
}

// PipelineConfig holds the tutoring policy constants. The defaults mirror
// long-standing product decisions; they are configuration, not tunables the
// code reasons about.
type PipelineConfig struct {
	AdvanceScore           float64       `mapstructure:"advance_score"`
	PretestDifficulty      int           `mapstructure:"pretest_difficulty"`
	PretestQuestions       int           `mapstructure:"pretest_questions"`
	ResourceQuizQuestions  int           `mapstructure:"resource_quiz_questions"`
	SkeletonResources      int           `mapstructure:"skeleton_resources"`
	EagerResourcesPerTopic int           `mapstructure:"eager_resources_per_topic"`
	QuizMaxRetries         int           `mapstructure:"quiz_max_retries"`
	QuizRetryDelay         time.Duration `mapstructure:"quiz_retry_delay_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("TUTOR")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	setPipelineDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30
	}
	cfg.AI.Timeout = cfg.AI.Timeout * time.Second
	cfg.Pipeline.QuizRetryDelay = cfg.Pipeline.QuizRetryDelay * time.Second

	return &cfg, nil
}

func setPipelineDefaults() {
	viper.SetDefault("rate_limit.max_requests", 100000)
	viper.SetDefault("rate_limit.window_minutes", 1)

	viper.SetDefault("pipeline.advance_score", 60)
	viper.SetDefault("pipeline.pretest_difficulty", 2)
	viper.SetDefault("pipeline.pretest_questions", 5)
	viper.SetDefault("pipeline.resource_quiz_questions", 3)
	viper.SetDefault("pipeline.skeleton_resources", 5)
	viper.SetDefault("pipeline.eager_resources_per_topic", 2)
	viper.SetDefault("pipeline.quiz_max_retries", 3)
	viper.SetDefault("pipeline.quiz_retry_delay_seconds", 2)
}

// DefaultPipeline returns the default policy constants without reading any
// config file. Used by tests and as a safety net when wiring services.
func DefaultPipeline() PipelineConfig {
	return PipelineConfig{
		AdvanceScore:           60,
		PretestDifficulty:      2,
		PretestQuestions:       5,
		ResourceQuizQuestions:  3,
		SkeletonResources:      5,
		EagerResourcesPerTopic: 2,
		QuizMaxRetries:         3,
		QuizRetryDelay:         2 * time.Second,
	}
}
