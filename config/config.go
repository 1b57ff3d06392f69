package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath 未指定配置文件时使用的默认路径
const DefaultPath = "config.yaml"

// requestTimeoutMargin 两次模型调用之外留给数据库和序列化的时间（秒）
const requestTimeoutMargin = 10

type Config struct {
	Server struct {
		Host            string   `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
		Port            int      `yaml:"port" env:"SERVER_PORT" env-default:"3000"`
		AllowedOrigins  []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
		RequestTimeout  int      `yaml:"request_timeout_sec" env:"SERVER_REQUEST_TIMEOUT_SEC" env-default:"200"` // 需容纳主模型和备用模型各一次完整调用，单位：秒
		ShutdownTimeout int      `yaml:"shutdown_timeout_sec" env:"SERVER_SHUTDOWN_TIMEOUT_SEC" env-default:"10"`
		Addr            string   `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`

	DB struct {
		Driver          string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"mysql"` // mysql | pgx | sqlite
		Host            string `yaml:"host" env:"DATABASE_HOST"`
		Port            int    `yaml:"port" env:"DATABASE_PORT"`
		Username        string `yaml:"username" env:"DATABASE_USERNAME"`
		Password        string `yaml:"password" env:"DATABASE_PASSWORD"`
		Database        string `yaml:"database" env:"DATABASE_NAME"`
		Charset         string `yaml:"charset" env:"DATABASE_CHARSET" env-default:"utf8mb4"`
		Path            string `yaml:"path" env:"DATABASE_PATH" env-default:"aging_curve.db"` // 仅 sqlite 使用
		DSN             string `yaml:"dsn" env:"DB_DSN"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`       // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`       // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"` // 连接最大生命周期（分钟）
		AutoMigrate     bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	LLM struct {
		Provider         string   `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"` // openai | gemini
		BaseURL          string   `yaml:"base_url" env:"LLM_BASE_URL"`
		APIKeys          []string `yaml:"api_keys" env:"LLM_API_KEYS" env-separator:","`
		Model            string   `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o"`
		FallbackModel    string   `yaml:"fallback_model" env:"LLM_FALLBACK_MODEL" env-default:"gpt-4o-mini"`
		MaxOutputTokens  int64    `yaml:"max_output_tokens" env:"LLM_MAX_OUTPUT_TOKENS" env-default:"8192"`
		StructuredOutput bool     `yaml:"structured_output" env:"LLM_STRUCTURED_OUTPUT"`
		CountTokens      bool     `yaml:"count_tokens" env:"LLM_COUNT_TOKENS"`
		TimeoutSec       int      `yaml:"timeout_sec" env:"LLM_TIMEOUT_SEC" env-default:"90"`
	} `yaml:"llm"`

	Log struct {
		Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format   string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text | json | pretty
		Output   string `yaml:"output" env:"LOG_OUTPUT" env-default:"stdout"` // stdout | file | both
		FilePath string `yaml:"file_path" env:"LOG_FILE_PATH"`
	} `yaml:"log"`

	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec" env:"SCHEDULER_CHECK_INTERVAL_SEC" env-default:"60"`
	} `yaml:"scheduler"`
}

// Load 加载配置：.env -> config.yaml -> 环境变量覆盖
// 密钥类配置（API Key、数据库密码）只应来自环境变量
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("loading configuration from %s", path)
	case errors.Is(err, os.ErrNotExist):
		log.Printf("%s not found, configuration comes from environment only", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finalize 计算派生字段；未显式配置 DSN 时按驱动拼接
func (c *Config) finalize() error {
	c.Server.Addr = net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))

	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	c.LLM.APIKeys = compact(c.LLM.APIKeys)

	switch c.LLM.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLM.Provider)
	}

	// 请求总时长至少覆盖两次模型调用
	if c.LLM.TimeoutSec > 0 {
		if need := 2*c.LLM.TimeoutSec + requestTimeoutMargin; c.Server.RequestTimeout < need {
			return fmt.Errorf("server.request_timeout_sec (%d) must be at least %d: 2 x llm.timeout_sec + %d",
				c.Server.RequestTimeout, need, requestTimeoutMargin)
		}
	}

	if c.DB.DSN != "" {
		return nil
	}

	switch c.DB.Driver {
	case "mysql":
		if c.DB.Port == 0 {
			c.DB.Port = 3306
		}
		c.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=true&loc=UTC",
			c.DB.Username,
			c.DB.Password,
			net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
			c.DB.Database,
			c.DB.Charset)
	case "pgx":
		if c.DB.Port == 0 {
			c.DB.Port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DB.Username, c.DB.Password),
			Host:     net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port)),
			Path:     "/" + c.DB.Database,
			RawQuery: "sslmode=disable",
		}
		c.DB.DSN = u.String()
	case "sqlite":
		c.DB.DSN = c.DB.Path
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	return nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
