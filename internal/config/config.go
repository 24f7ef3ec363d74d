// config предоставляет структуру конфигурации omni-scout
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"   env:"ENV" env-default:"local"`
	GRPC     GRPCConfig    `yaml:"grpc"`
	HTTP     HTTPConfig    `yaml:"http"`
	Scout    ScoutConfig   `yaml:"scout"`
	Cache    CacheConfig   `yaml:"cache"`
	YouTube  YouTubeConfig `yaml:"youtube"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// GRPCConfig — сетевые настройки gRPC-сервера (health-эндпоинт).
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50061"`
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// HTTPConfig — сетевые настройки HTTP-сервера (liveness/readiness/metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50062"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// NewsSourceConfig — одна новостная лента (только YAML; при пустом списке
// действует встроенный набор источников).
type NewsSourceConfig struct {
	Topic string `yaml:"topic"`
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
}

// ScoutConfig — параметры сборочного прогона.
type ScoutConfig struct {
	// Interval — период между прогонами.
	Interval time.Duration `yaml:"interval" env:"SCOUT_INTERVAL" env-default:"1h"`
	// MaxItems — сколько записей каждой группы попадает в отчёт/затравку.
	MaxItems int `yaml:"max_items" env:"SCOUT_MAX_ITEMS" env-default:"5"`
	// MaxResults — сколько результатов запрашивается у источника.
	MaxResults int `yaml:"max_results" env:"SCOUT_MAX_RESULTS" env-default:"5"`
	// NewsRate/ArxivRate — минимальные интервалы между запросами
	// к соответствующему каналу.
	NewsRate  time.Duration `yaml:"news_rate"  env:"NEWS_RATE_LIMIT"  env-default:"1500ms"`
	ArxivRate time.Duration `yaml:"arxiv_rate" env:"ARXIV_RATE_LIMIT" env-default:"3s"`
	// ArxivEndpoint — адрес экспортного API ArXiv.
	ArxivEndpoint string `yaml:"arxiv_endpoint" env:"ARXIV_ENDPOINT" env-default:"https://export.arxiv.org/api/query"`
	// NewsSources — переопределение встроенного набора лент.
	NewsSources []NewsSourceConfig `yaml:"news_sources"`
}

// CacheConfig — файловый кэш прогона и журнал активности.
type CacheConfig struct {
	Dir     string `yaml:"dir"      env:"CACHE_DIR"         env-default:"cache"`
	LogPath string `yaml:"log_path" env:"ACTIVITY_LOG_PATH" env-default:"logs/omni_system.log"`
}

// YouTubeConfig — доступ к YouTube Search API.
// Отсутствие ключа — ошибка конфигурации на момент видео-прогона,
// до какой-либо сетевой активности.
type YouTubeConfig struct {
	APIKey   string   `yaml:"api_key"  env:"YOUTUBE_API_KEY"`
	Endpoint string   `yaml:"endpoint" env:"YOUTUBE_ENDPOINT" env-default:"https://www.googleapis.com/youtube/v3/search"`
	Keywords []string `yaml:"keywords" env:"YOUTUBE_KEYWORDS" env-separator:","`
}

// GeminiConfig — доступ к Gemini.
type GeminiConfig struct {
	APIKey        string `yaml:"api_key"        env:"GEMINI_API_KEY"`
	Endpoint      string `yaml:"endpoint"       env:"GEMINI_ENDPOINT" env-default:"https://generativelanguage.googleapis.com"`
	Model         string `yaml:"model"          env:"GEMINI_MODEL"          env-default:"gemini-2.5-flash"`
	FallbackModel string `yaml:"fallback_model" env:"GEMINI_FALLBACK_MODEL" env-default:"gemini-1.5-flash"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// HTTP — таймаут одного запроса к источнику.
	HTTP time.Duration `yaml:"http" env:"HTTP_TIMEOUT" env-default:"20s"`
	// Check — таймаут лёгких проверок соединения (connection-check).
	Check time.Duration `yaml:"check" env:"CHECK_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Scout.Interval < time.Minute {
		return fmt.Errorf("scout.interval must be at least 1m")
	}
	if c.Scout.MaxItems <= 0 {
		return fmt.Errorf("scout.max_items must be > 0")
	}
	if c.Scout.MaxResults <= 0 {
		return fmt.Errorf("scout.max_results must be > 0")
	}
	if c.Scout.NewsRate <= 0 || c.Scout.ArxivRate <= 0 {
		return fmt.Errorf("scout rate limits must be > 0")
	}
	if c.Scout.ArxivEndpoint == "" {
		return fmt.Errorf("scout.arxiv_endpoint is required")
	}
	for _, src := range c.Scout.NewsSources {
		if src.Name == "" || src.URL == "" {
			return fmt.Errorf("scout.news_sources entries require name and url")
		}
	}
	if c.Cache.Dir == "" || c.Cache.LogPath == "" {
		return fmt.Errorf("cache.dir and cache.log_path are required")
	}
	if c.Timeouts.HTTP <= 0 || c.Timeouts.Check <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}
	return nil
}
