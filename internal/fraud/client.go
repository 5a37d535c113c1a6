// Package fraud implements the synchronous client for the external
// fraud-check endpoint. Any failure (transport error, timeout, non-2xx
// status, malformed body or a body without a verdict) surfaces as
// apperrors.ErrFraudCheckUnavailable; the caller must not treat an
// unavailable check as a negative verdict.
package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fintechlabs/payment-service/config"
	"github.com/fintechlabs/payment-service/internal/apperrors"
	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.Fraud) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// checkResponse uses a pointer for the verdict so a body that never carried
// the fraudulent field is distinguishable from an explicit false.
type checkResponse struct {
	Fraudulent *bool  `json:"fraudulent"`
	Message    string `json:"message"`
}

// Check issues GET {base}/check?amount=..&transactionId=.. with the shared
// API key and returns the verdict. There are no retries.
func (c *Client) Check(ctx context.Context, payment *models.Payment) (*models.FraudVerdict, error) {
	checkURL := fmt.Sprintf("%s/check?amount=%s&transactionId=%s",
		c.baseURL, payment.Amount.StringFixed(2), url.QueryEscape(payment.TransactionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrFraudCheckUnavailable, err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.Errorf("Error checking fraud for payment ID %s: %s", payment.ID, err.Error())
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFraudCheckUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.Errorf("Fraud check for payment ID %s returned status %d", payment.ID, resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrFraudCheckUnavailable, resp.StatusCode)
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrFraudCheckUnavailable, err)
	}
	if body.Fraudulent == nil {
		return nil, fmt.Errorf("%w: response is missing the fraudulent field", apperrors.ErrFraudCheckUnavailable)
	}

	verdict := &models.FraudVerdict{
		Fraudulent: *body.Fraudulent,
		Message:    body.Message,
	}
	logrus.Infof("Fraud check for payment ID %s returned: fraudulent=%t", payment.ID, verdict.Fraudulent)

	return verdict, nil
}
