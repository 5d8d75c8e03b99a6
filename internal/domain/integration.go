package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
)

type IntegrationType string

const (
	IntegrationTypeSource   IntegrationType = "PDV"
	IntegrationTypeTarget   IntegrationType = "PROMO"
	IntegrationTypeTelegram IntegrationType = "TELEGRAM"
)

// Integration é o registro cru de uma integração; BaseConfig só deve ser lido via Decode*
type Integration struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       IntegrationType `json:"type"`
	BaseConfig map[string]any  `json:"base_config"`
	Active     bool            `json:"active"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
}

// NotificationChannel é um canal de notificação cadastrado (ex.: bot do Telegram)
type NotificationChannel struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      IntegrationType `json:"type"`
	Config    map[string]any  `json:"config"`
	Active    bool            `json:"active"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

type SourceConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type TargetConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	CampaignName   string `mapstructure:"campaign_name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type TelegramConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

var ErrInvalidIntegrationConfig = errors.New("invalid integration config")

func decodeConfig(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIntegrationConfig, err)
	}

	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s é obrigatório", ErrInvalidIntegrationConfig, field)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s inválido (%q)", ErrInvalidIntegrationConfig, field, raw)
	}

	return nil
}

// DecodeSourceConfig valida e tipa a configuração de uma integração do PDV
func DecodeSourceConfig(raw map[string]any) (SourceConfig, error) {
	var cfg SourceConfig
	if err := decodeConfig(raw, &cfg); err != nil {
		return cfg, err
	}

	if err := validateURL("base_url", cfg.BaseURL); err != nil {
		return cfg, err
	}

	if cfg.Token == "" {
		return cfg, fmt.Errorf("%w: token é obrigatório", ErrInvalidIntegrationConfig)
	}

	return cfg, nil
}

// DecodeTargetConfig valida e tipa a configuração de uma integração da plataforma de descontos
func DecodeTargetConfig(raw map[string]any) (TargetConfig, error) {
	var cfg TargetConfig
	if err := decodeConfig(raw, &cfg); err != nil {
		return cfg, err
	}

	if err := validateURL("base_url", cfg.BaseURL); err != nil {
		return cfg, err
	}

	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("%w: api_key é obrigatório", ErrInvalidIntegrationConfig)
	}

	return cfg, nil
}

func DecodeTelegramConfig(raw map[string]any) (TelegramConfig, error) {
	var cfg TelegramConfig
	if err := decodeConfig(raw, &cfg); err != nil {
		return cfg, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.telegram.org"
	}

	if cfg.BotToken == "" || cfg.ChatID == "" {
		return cfg, fmt.Errorf("%w: bot_token e chat_id são obrigatórios", ErrInvalidIntegrationConfig)
	}

	return cfg, nil
}
