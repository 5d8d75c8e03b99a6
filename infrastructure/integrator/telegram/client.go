package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Client envia mensagens de texto para um chat via Bot API
type Client struct {
	httpClient *http.Client
	config     domain.TelegramConfig
}

func NewClient(cfg domain.TelegramConfig, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     cfg,
	}
}

func (c *Client) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.config.ChatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(c.config.BaseURL, "/"), c.config.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.NewIntegrationError(domain.SystemNotification, "send_message", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A URL contém o token do bot; não propaga a mensagem do net/http
		return domain.NewIntegrationError(domain.SystemNotification, "send_message",
			fmt.Errorf("erro ao executar a requisição para o chat %s", c.config.ChatID))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewIntegrationError(domain.SystemNotification, "send_message", err)
	}

	var result sendMessageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.NewIntegrationError(domain.SystemNotification, "send_message",
			fmt.Errorf("resposta inválida. Status: %d", resp.StatusCode))
	}

	if !result.OK {
		return domain.NewIntegrationError(domain.SystemNotification, "send_message",
			fmt.Errorf("mensagem recusada. Status: %d, Descrição: %s", resp.StatusCode, result.Description))
	}

	return nil
}
