package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrUnavailable is returned for any non-success processor response. The raw
// response body is logged, never propagated, so processor internals do not
// leak to callers.
var ErrUnavailable = errors.New("payment processing temporarily unavailable")

// ZiinaProvider creates payment intents against the Ziina REST API.
type ZiinaProvider struct {
	BaseURL     string
	AccessToken string
	client      *http.Client
}

func NewZiinaProvider(baseURL, accessToken string) *ZiinaProvider {
	if baseURL == "" {
		baseURL = "https://api.ziina.com/v1"
	}
	return &ZiinaProvider{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type ziinaIntentReq struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	SuccessURL  string            `json:"success_url"`
	CancelURL   string            `json:"cancel_url"`
}

type ziinaIntentResp struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RedirectURL string `json:"redirect_url"`
}

func (p *ZiinaProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	body, _ := json.Marshal(ziinaIntentReq{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Metadata:    req.Metadata,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
	})
	apiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/payment_intent", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	apiReq.Header.Set("Content-Type", "application/json")
	apiReq.Header.Set("Authorization", "Bearer "+p.AccessToken)
	resp, err := p.client.Do(apiReq)
	if err != nil {
		log.Printf("[ZIINA] payment_intent request failed: %v", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[ZIINA] payment_intent status=%d body=%s", resp.StatusCode, string(respBody))
		return nil, ErrUnavailable
	}
	var out ziinaIntentResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		log.Printf("[ZIINA] payment_intent bad response body: %v", err)
		return nil, ErrUnavailable
	}
	return &Intent{ID: out.ID, Status: out.Status, RedirectURL: out.RedirectURL}, nil
}
