package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"CoinSentry/internal/model"
)

// DefaultBotAPIURL is the public Telegram Bot API endpoint.
const DefaultBotAPIURL = "https://api.telegram.org"

// TelegramNotifier delivers watchlist digests and risk alerts to a chat.
type TelegramNotifier struct {
	BaseURL    string
	BotToken   string
	ChatID     string
	MaxRetries int
	Backoff    time.Duration
	Client     *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
// maxRetries bounds how many resends are attempted after a failed delivery.
func NewTelegramNotifier(botToken, chatID, proxyURL string, maxRetries int) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &TelegramNotifier{
		BaseURL:    DefaultBotAPIURL,
		BotToken:   botToken,
		ChatID:     chatID,
		MaxRetries: maxRetries,
		Backoff:    time.Second,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (t *TelegramNotifier) send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: t.ChatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Deliver sends a message, resending with exponential backoff on failure.
// No backoff is taken after the final attempt.
func (t *TelegramNotifier) Deliver(ctx context.Context, text string) error {
	var lastErr error
	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		lastErr = t.send(ctx, text)
		if lastErr == nil {
			return nil
		}
		if attempt == t.MaxRetries {
			break
		}
		backoff := time.Duration(1<<uint(attempt)) * t.Backoff
		log.Printf("[WARN] telegram delivery failed (attempt %d/%d), next try in %v: %v",
			attempt+1, t.MaxRetries+1, backoff, lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("delivery failed after %d attempts: %w", t.MaxRetries+1, lastErr)
}

// DeliverRiskAlert sends a standalone alert for a VERY_HIGH risk asset,
// followed by its full rendered report.
func (t *TelegramNotifier) DeliverRiskAlert(ctx context.Context, a *model.AssetAssessment) error {
	return t.Deliver(ctx, FormatRiskAlert(a)+"\n"+FormatAssessmentReport(a))
}
