package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Sender delivers one HTML email. Implementations either succeed or
// return a delivery error; they never retry.
type Sender interface {
	SendHTML(ctx context.Context, from string, to []string, subject, html string) error
}

type address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type message struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

// Client talks to a Brevo-compatible transactional email HTTP API.
type Client struct {
	apiKey     string
	senderName string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, senderName string) *Client {
	return &Client{
		apiKey:     apiKey,
		senderName: senderName,
		baseURL:    "https://api.brevo.com",
		httpClient: http.DefaultClient,
	}
}

func (c *Client) SendHTML(ctx context.Context, from string, to []string, subject, html string) error {
	msg := message{
		Sender:      address{Name: c.senderName, Email: from},
		Subject:     subject,
		HTMLContent: html,
	}
	for _, rcpt := range to {
		msg.To = append(msg.To, address{Email: rcpt})
	}
	reqData, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/smtp/email", bytes.NewReader(reqData))
	if err != nil {
		return err
	}
	req.Header.Add("api-key", c.apiKey)
	req.Header.Add("content-type", "application/json")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		errBody, err := io.ReadAll(res.Body)
		if err != nil {
			errBody = []byte(`unable to read body`)
		}
		return fmt.Errorf("got status code %d when sending email: %s", res.StatusCode, string(errBody))
	}
	return nil
}
