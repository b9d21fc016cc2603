package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL — Langflow-хостинг на DataStax Astra.
	DefaultBaseURL = "https://api.langflow.astra.datastax.com"

	// DefaultTimeout — таймаут каждого HTTP-запроса.
	DefaultTimeout = 30 * time.Second
)

// Переменные окружения (fallback для флагов).
const (
	EnvBaseURL    = "LANGFLOW_BASE_URL"
	EnvLangflowID = "LANGFLOW_ID"
	EnvFlowID     = "FLOW_ID"
	EnvToken      = "APPLICATION_TOKEN"
)

// tokenPlaceholder — заглушка из шаблонных .env файлов.
// Токен с этой подстрокой считается незаданным.
const tokenPlaceholder = "<YOUR_APPLICATION_TOKEN>"

// Config — конфигурация одного вызова flow.
// Заполняется один раз при старте и передаётся дальше явно.
type Config struct {
	// BaseURL — адрес Langflow API.
	BaseURL string

	// LangflowID — ID организации для Astra-хостинга.
	// Если пустой, префикс /lf/{id} к URL не добавляется (self-hosted).
	LangflowID string

	// Endpoint — flow ID или имя endpoint'а. Обязателен.
	Endpoint string

	// Token — application token. Может отсутствовать
	// (некоторые deployment'ы разрешают анонимный доступ).
	Token string

	// Timeout — таймаут каждого HTTP-запроса.
	Timeout time.Duration
}

// LoadDotenv подгружает .env, затем .env.local.
// Значения из .env.local переопределяют уже установленные.
// Отсутствие файлов — не ошибка: окружение может быть задано снаружи.
func LoadDotenv() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")
}

// Resolve собирает Config из явных значений флагов и окружения.
// Каждое поле разрешается независимо: флаг > env > default/пусто.
// Отсутствие endpoint'а — фатальная ошибка конфигурации,
// она возвращается до любого сетевого вызова.
func Resolve(baseURL, langflowID, endpoint, token string, timeout time.Duration) (*Config, error) {
	cfg := &Config{
		BaseURL:    firstNonEmpty(baseURL, os.Getenv(EnvBaseURL), DefaultBaseURL),
		LangflowID: firstNonEmpty(langflowID, os.Getenv(EnvLangflowID)),
		Endpoint:   firstNonEmpty(endpoint, os.Getenv(EnvFlowID)),
		Token:      firstNonEmpty(token, os.Getenv(EnvToken)),
		Timeout:    timeout,
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if strings.Contains(cfg.Token, tokenPlaceholder) {
		cfg.Token = ""
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: pass --endpoint or set %s", ErrMissingEndpoint, EnvFlowID)
	}

	return cfg, nil
}

// firstNonEmpty возвращает первое непустое значение.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
