package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`

	DBURI  string `mapstructure:"DB_URI"`
	DBName string `mapstructure:"DB_NAME"`

	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`

	GoogleBooksBaseURL       string  `mapstructure:"GOOGLE_BOOKS_BASE_URL"`
	GoogleBooksAPIKey        string  `mapstructure:"GOOGLE_BOOKS_API_KEY"`
	GoogleBooksMaxResults    int     `mapstructure:"GOOGLE_BOOKS_MAX_RESULTS"`
	GoogleBooksTimeout       int     `mapstructure:"GOOGLE_BOOKS_TIMEOUT"`
	GoogleBooksRatePerSecond float64 `mapstructure:"GOOGLE_BOOKS_RATE_PER_SECOND"`
	SearchMinCacheResults    int     `mapstructure:"SEARCH_MIN_CACHE_RESULTS"`

	// REDIS_ADDR 为空时不启用外部目录响应缓存
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	SearchCacheTTL int    `mapstructure:"SEARCH_CACHE_TTL"`

	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	RecLimit         int    `mapstructure:"REC_LIMIT"`
}

var defaults = map[string]interface{}{
	"APP_ENV":                      "development",
	"SERVER_ADDRESS":               ":8080",
	"CONTEXT_TIMEOUT":              30,
	"DB_URI":                       "",
	"DB_NAME":                      "bookrec",
	"ACCESS_TOKEN_SECRET":          "",
	"GOOGLE_BOOKS_BASE_URL":        "https://www.googleapis.com/books/v1",
	"GOOGLE_BOOKS_API_KEY":         "",
	"GOOGLE_BOOKS_MAX_RESULTS":     40,
	"GOOGLE_BOOKS_TIMEOUT":         10,
	"GOOGLE_BOOKS_RATE_PER_SECOND": 5.0,
	"SEARCH_MIN_CACHE_RESULTS":     10,
	"REDIS_ADDR":                   "",
	"REDIS_PASSWORD":               "",
	"REDIS_DB":                     0,
	"SEARCH_CACHE_TTL":             3600,
	"CORS_ALLOW_ORIGINS":           "*",
	"REC_LIMIT":                    10,
}

// NewEnv 读取 .env（可选）与环境变量，环境变量优先
func NewEnv(configFile string) (*Env, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("读取配置文件失败 %s: %w", configFile, err)
			}
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) validate() error {
	var errs []error
	if strings.TrimSpace(e.DBURI) == "" {
		errs = append(errs, errors.New("DB_URI is required"))
	}
	if strings.TrimSpace(e.AccessTokenSecret) == "" {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required"))
	}
	if e.ContextTimeout <= 0 {
		errs = append(errs, errors.New("CONTEXT_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func (e *Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

func (e *Env) AllowedOrigins() []string {
	return strings.Split(e.CORSAllowOrigins, ",")
}
