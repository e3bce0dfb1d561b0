// Package client is the signup page's side of the backend API: it submits a
// registration and asks the backend to confirm a completed payment.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/divine-encounter/event-registration/registration"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	registerPath      = "/api/register"
	verifyPaymentPath = "/api/verify-payment"

	verificationStatusSuccess = "success"
)

// PaymentSession is everything needed to charge the attendee for the
// registration the backend just created.
type PaymentSession struct {
	RegistrationID       string
	TransactionReference string
	PayerEmail           string
	PayerName            string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient talks to the backend at baseURL. A nil httpClient gets one with
// otel instrumentation on its transport.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type registerRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AttendanceMode string `json:"attendance_mode"`
	Church         string `json:"church"`
	SpecialNeeds   string `json:"special_needs"`
	Newsletter     bool   `json:"newsletter"`
}

type registerResponse struct {
	RegistrationID       string `json:"registration_id"`
	TransactionReference string `json:"transaction_reference"`
}

// SubmitRegistration sends the form to the backend and returns the payment
// session for the registration it created.
func (c *Client) SubmitRegistration(ctx context.Context, form registration.Form) (PaymentSession, error) {
	form = form.Trimmed()

	body := registerRequest{
		FullName:       form.FullName,
		Email:          form.Email,
		Phone:          form.Phone,
		AttendanceMode: string(form.AttendanceMode),
		Church:         form.Church,
		SpecialNeeds:   form.SpecialNeeds,
		Newsletter:     form.Newsletter,
	}

	resp, err := c.postJSON(ctx, registerPath, body)
	if err != nil {
		return PaymentSession{}, NewNetworkError("Failed to reach registration endpoint", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return PaymentSession{}, NewRegistrationFailedError(fmt.Sprintf("Registration returned status %d", resp.StatusCode), nil)
	}

	var decoded registerResponse
	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return PaymentSession{}, NewRegistrationFailedError("Failed to decode registration response", err)
	}

	return PaymentSession{
		RegistrationID:       decoded.RegistrationID,
		TransactionReference: decoded.TransactionReference,
		PayerEmail:           form.Email,
		PayerName:            form.FullName,
	}, nil
}

type verifyRequest struct {
	Reference string `json:"reference"`
}

type verifyResponse struct {
	Status string `json:"status"`
}

// VerifyPayment asks the backend to confirm the payment made under reference.
// Only a body status of exactly "success" counts as verified.
func (c *Client) VerifyPayment(ctx context.Context, reference string) error {
	resp, err := c.postJSON(ctx, verifyPaymentPath, verifyRequest{Reference: reference})
	if err != nil {
		return NewVerificationRequestFailedError(reference, "Failed to reach verification endpoint", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return NewVerificationRequestFailedError(reference, fmt.Sprintf("Verification returned status %d", resp.StatusCode), nil)
	}

	var decoded verifyResponse
	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return NewVerificationRequestFailedError(reference, "Failed to decode verification response", err)
	}

	if decoded.Status != verificationStatusSuccess {
		return NewVerificationRejectedError(reference, decoded.Status)
	}

	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
