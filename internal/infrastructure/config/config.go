package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	AI          AIConfig        `mapstructure:"ai"`
	Nutrition   NutritionConfig `mapstructure:"nutrition"`
	Weather     WeatherConfig   `mapstructure:"weather"`
	Cache       CacheConfig     `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
	LogFile     string          `mapstructure:"log_file"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env         string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
	Name        string `mapstructure:"name"`
	MaxServings int    `mapstructure:"max_servings"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// AIConfig 遠端步驟改寫設定
// provider: chat（OpenAI 相容 chat/completions，如 Together、OpenRouter）或 gemini
type AIConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Provider    string        `mapstructure:"provider"`
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`

	// 上游請求隊列
	QueueWorkers int `mapstructure:"queue_workers"`
	QueueSize    int `mapstructure:"queue_size"`
}

// NutritionConfig USDA FoodData Central 設定
type NutritionConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	Workers int           `mapstructure:"workers"`
}

// WeatherConfig OpenWeatherMap 設定
type WeatherConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	DefaultCity string        `mapstructure:"default_city"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig 緩存配置
// backend: memory 或 redis
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時只依賴環境變數與預設值
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// 設定環境變數前綴
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定第三方服務的慣用環境變量
	v.BindEnv("ai.api_key", "AI_API_KEY", "TOGETHER_API_KEY", "OPENROUTER_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("ai.enabled", "AI_ENABLED")
	v.BindEnv("ai.provider", "AI_PROVIDER")
	v.BindEnv("ai.model", "AI_MODEL")
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("nutrition.api_key", "NUTRITION_API_KEY", "USDA_API_KEY")
	v.BindEnv("weather.api_key", "WEATHER_API_KEY", "OPENWEATHER_API_KEY")
	v.BindEnv("weather.default_city", "WEATHER_DEFAULT_CITY")
	v.BindEnv("cache.enabled", "CACHE_ENABLED")
	v.BindEnv("cache.backend", "CACHE_BACKEND")
	v.BindEnv("cache.redis_addr", "REDIS_ADDR")
	v.BindEnv("cache.redis_password", "REDIS_PASSWORD")
	v.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	v.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	v.BindEnv("dedup_window", "DEDUP_WINDOW")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_file", "LOG_FILE")
	v.BindEnv("server.port", "PORT")

	// 解析設定
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-browser")
	v.SetDefault("app.max_servings", 20)

	// 伺服器設定
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "45s")
	v.SetDefault("server.max_body_bytes", 1<<20) // 1MB

	// 遠端改寫設定（預設關閉，金鑰只能來自環境）
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.provider", "chat")
	v.SetDefault("ai.base_url", "https://api.together.xyz/v1")
	v.SetDefault("ai.model", "meta-llama/Llama-3.2-11B-Vision-Instruct-Turbo")
	v.SetDefault("ai.max_tokens", 1000)
	v.SetDefault("ai.temperature", 0.3)
	v.SetDefault("ai.timeout", "30s")
	v.SetDefault("ai.queue_workers", 2)
	v.SetDefault("ai.queue_size", 50)

	// 營養查詢設定
	v.SetDefault("nutrition.base_url", "https://api.nal.usda.gov/fdc/v1")
	v.SetDefault("nutrition.api_key", "DEMO_KEY")
	v.SetDefault("nutrition.timeout", "15s")
	v.SetDefault("nutrition.workers", 4)

	// 天氣查詢設定
	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.default_city", "Chennai")
	v.SetDefault("weather.timeout", "10s")

	// 快取設定
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.max_size", 1000)
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.cleanup_interval", "10m")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_db", 0)

	// 限流設定
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("dedup_window", "1s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/app.log")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if config.App.MaxServings < 1 {
		return fmt.Errorf("invalid max servings")
	}

	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
		switch config.Cache.Backend {
		case "memory":
		case "redis":
			if config.Cache.RedisAddr == "" {
				return fmt.Errorf("redis address is required for redis cache backend")
			}
		default:
			return fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
		}
	}

	if config.AI.Enabled {
		switch config.AI.Provider {
		case "chat", "gemini":
		default:
			return fmt.Errorf("unknown ai provider %q", config.AI.Provider)
		}
		if config.AI.APIKey == "" {
			return fmt.Errorf("ai api key is required when ai is enabled")
		}
	}

	if config.Nutrition.Workers <= 0 {
		return fmt.Errorf("invalid nutrition workers")
	}
	if config.RateLimit.Enabled && (config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0) {
		return fmt.Errorf("invalid rate limit settings")
	}

	return nil
}
