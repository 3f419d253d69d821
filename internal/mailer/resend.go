package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

// Hosted mail APIs occasionally hang; cap every call.
const resendTimeout = 8 * time.Second

// ResendTransport delivers mail through the Resend HTTP API.
type ResendTransport struct {
	apiKey     string
	from       string
	apiURL     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewResendTransport(apiKey, from string, logger *slog.Logger) *ResendTransport {
	return &ResendTransport{
		apiKey:     apiKey,
		from:       from,
		apiURL:     resendAPIURL,
		httpClient: &http.Client{Timeout: resendTimeout},
		logger:     logger,
	}
}

func (t *ResendTransport) Name() string {
	return "resend"
}

type resendAttachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

type resendRequest struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (t *ResendTransport) Send(ctx context.Context, msg *Message) error {
	from := msg.From
	if from == "" {
		from = t.from
	}

	payload := resendRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	for _, att := range msg.Attachments {
		payload.Attachments = append(payload.Attachments, resendAttachment{
			Filename:    att.Filename,
			Content:     base64.StdEncoding.EncodeToString(att.Content),
			ContentType: att.ContentType,
		})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal resend request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, resendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Error("resend request failed", "error", err, "to", msg.To)
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		apiResp = resendResponse{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := apiResp.Error
		if reason == "" {
			reason = apiResp.Message
		}
		if reason == "" {
			reason = fmt.Sprintf("resend API returned status %d", resp.StatusCode)
		}
		t.logger.Error("resend send rejected", "status", resp.StatusCode, "reason", reason, "to", msg.To)
		return fmt.Errorf("resend send failed: %s", reason)
	}

	t.logger.Info("resend send succeeded", "id", apiResp.ID, "to", msg.To, "subject", msg.Subject)
	return nil
}
