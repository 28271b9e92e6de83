package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BACKEND_WATSON      = "watson"
	BACKEND_HUGGINGFACE = "huggingface"
	BACKEND_OPENAI      = "openai"
	BACKEND_LOCAL       = "local"
)

const (
	DEFAULT_WATSON_URL      = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DEFAULT_WATSON_MODEL_ID = "emotion_aggregated-workflow_lang_en_stock"
	DEFAULT_WATSON_IAM_URL  = "https://iam.cloud.ibm.com/identity/token"
	DEFAULT_HF_API_URL      = "https://api-inference.huggingface.co/models/j-hartmann/emotion-english-distilroberta-base"
	DEFAULT_OPENAI_MODEL    = "gpt-4o-mini"
	DEFAULT_HUGOT_MODEL     = "SamLowe/roberta-base-go_emotions-onnx"
	DEFAULT_HUGOT_MODEL_DIR = "./internal/transformers/models"
	DEFAULT_HUGOT_ONNX_FILE = "onnx/model.onnx"
)

// ServerConfig is everything a process needs to serve emotion requests.
// It is built once at startup and passed down explicitly.
type ServerConfig struct {
	AppEnv   string
	Host     string
	Port     int
	LogLevel string

	ScorerBackend       string
	ScorerTimeout       time.Duration
	StripMarkdown       bool
	HealthCheckInterval time.Duration
	MetricsEnabled      bool

	Watson      WatsonConfig
	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig
	Hugot       HugotConfig
}

type WatsonConfig struct {
	URL     string
	ModelID string
	// APIKey enables IBM Cloud IAM bearer auth when set.
	APIKey string
	IAMURL string
}

type HuggingFaceConfig struct {
	URL   string
	Token string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type HugotConfig struct {
	Model    string
	ModelDir string
	OnnxFile string
}

// Addr is the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadServerConfig reads the server configuration from the environment,
// applying defaults for anything unset.
func LoadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		AppEnv:        AppEnv(),
		Host:          getEnv("HOST", "localhost"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ScorerBackend: strings.ToLower(getEnv("SCORER_BACKEND", BACKEND_WATSON)),
		Watson: WatsonConfig{
			URL:     getEnv("WATSON_URL", DEFAULT_WATSON_URL),
			ModelID: getEnv("WATSON_MODEL_ID", DEFAULT_WATSON_MODEL_ID),
			APIKey:  getEnv("WATSON_API_KEY", ""),
			IAMURL:  getEnv("WATSON_IAM_URL", DEFAULT_WATSON_IAM_URL),
		},
		HuggingFace: HuggingFaceConfig{
			URL:   getEnv("HF_API_URL", DEFAULT_HF_API_URL),
			Token: getEnv("HF_API_TOKEN", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", DEFAULT_OPENAI_MODEL),
		},
		Hugot: HugotConfig{
			Model:    getEnv("HUGOT_MODEL", DEFAULT_HUGOT_MODEL),
			ModelDir: getEnv("HUGOT_MODEL_DIR", DEFAULT_HUGOT_MODEL_DIR),
			OnnxFile: getEnv("HUGOT_ONNX_FILE", DEFAULT_HUGOT_ONNX_FILE),
		},
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 5000); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return ServerConfig{}, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ScorerTimeout, err = getEnvDuration("SCORER_TIMEOUT", 10*time.Second); err != nil {
		return ServerConfig{}, err
	}
	if cfg.HealthCheckInterval, err = getEnvDuration("HEALTHCHECK_INTERVAL", 15*time.Second); err != nil {
		return ServerConfig{}, err
	}
	if cfg.StripMarkdown, err = getEnvBool("SCORER_STRIP_MARKDOWN", false); err != nil {
		return ServerConfig{}, err
	}
	if cfg.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", true); err != nil {
		return ServerConfig{}, err
	}

	switch cfg.ScorerBackend {
	case BACKEND_WATSON, BACKEND_HUGGINGFACE, BACKEND_LOCAL:
	case BACKEND_OPENAI:
		if cfg.OpenAI.APIKey == "" {
			return ServerConfig{}, fmt.Errorf("OPENAI_API_KEY is required when SCORER_BACKEND=%s", BACKEND_OPENAI)
		}
	default:
		return ServerConfig{}, fmt.Errorf("unknown SCORER_BACKEND %q", cfg.ScorerBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}
