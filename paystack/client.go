// Package paystack talks to the Paystack REST API from the backend: it
// confirms that a transaction reference was actually charged and
// authenticates webhook deliveries.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

const (
	DefaultBaseURL = "https://api.paystack.co"

	STATUS_SUCCESS = "success"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(httpClient *http.Client, baseURL string, secretKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
	}
}

type Customer struct {
	Email string `json:"email"`
}

type Transaction struct {
	ID        int64      `json:"id"`
	Status    string     `json:"status"`
	Reference string     `json:"reference"`
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	PaidAt    *time.Time `json:"paid_at"`
	Customer  Customer   `json:"customer"`
}

func (t Transaction) Successful() bool {
	return t.Status == STATUS_SUCCESS
}

// Money is the charged amount. Paystack reports amounts in the minor unit.
func (t Transaction) Money() *money.Money {
	return money.New(t.Amount, t.Currency)
}

type verifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    Transaction `json:"data"`
}

// VerifyTransaction asks Paystack for the settled state of the transaction
// identified by reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (Transaction, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Transaction{}, NewRequestFailedError("Failed to build verify request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Transaction{}, NewRequestFailedError(fmt.Sprintf("Failed to verify transaction %q", reference), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Transaction{}, NewUnexpectedStatusError(resp.StatusCode)
	}

	var body verifyResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return Transaction{}, NewInvalidResponseError("Failed to decode verify response", err)
	}

	if !body.Status {
		return Transaction{}, NewVerificationRejectedError(body.Message)
	}

	return body.Data, nil
}
