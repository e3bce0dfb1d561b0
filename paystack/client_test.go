package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTransaction(t *testing.T) {
	t.Run("successful verification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transaction/verify/DE2026-ABC123", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"id": 4099260516,
					"status": "success",
					"reference": "DE2026-ABC123",
					"amount": 500000,
					"currency": "NGN",
					"paid_at": "2026-02-01T10:15:00.000Z",
					"customer": {"email": "ada@example.com"}
				}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "sk_test_123")

		txn, err := client.VerifyTransaction(context.Background(), "DE2026-ABC123")
		require.NoError(t, err)
		assert.True(t, txn.Successful())
		assert.Equal(t, "DE2026-ABC123", txn.Reference)
		assert.Equal(t, int64(500000), txn.Money().Amount())
		assert.Equal(t, "NGN", txn.Money().Currency().Code)
		assert.Equal(t, "ada@example.com", txn.Customer.Email)
		require.NotNil(t, txn.PaidAt)
	})

	t.Run("abandoned transaction is returned as not successful", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": true, "message": "ok", "data": {"status": "abandoned", "reference": "ref", "amount": 500000, "currency": "NGN", "paid_at": null}}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "sk")

		txn, err := client.VerifyTransaction(context.Background(), "ref")
		require.NoError(t, err)
		assert.False(t, txn.Successful())
		assert.Nil(t, txn.PaidAt)
	})

	t.Run("non 200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "sk")

		_, err := client.VerifyTransaction(context.Background(), "missing")
		var paystackErr *Error
		require.ErrorAs(t, err, &paystackErr)
		assert.Equal(t, REASON_UNEXPECTED_STATUS, paystackErr.Reason)
	})

	t.Run("provider rejects the lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "sk")

		_, err := client.VerifyTransaction(context.Background(), "ref")
		var paystackErr *Error
		require.ErrorAs(t, err, &paystackErr)
		assert.Equal(t, REASON_VERIFICATION_REJECTED, paystackErr.Reason)
		assert.Equal(t, "Invalid key", paystackErr.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewClient(server.Client(), server.URL, "sk")

		_, err := client.VerifyTransaction(context.Background(), "ref")
		var paystackErr *Error
		require.ErrorAs(t, err, &paystackErr)
		assert.Equal(t, REASON_INVALID_RESPONSE, paystackErr.Reason)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(http.DefaultClient, url, "sk")

		_, err := client.VerifyTransaction(context.Background(), "ref")
		var paystackErr *Error
		require.ErrorAs(t, err, &paystackErr)
		assert.Equal(t, REASON_REQUEST_FAILED, paystackErr.Reason)
	})
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client := NewClient(http.DefaultClient, "", "sk")
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client = NewClient(http.DefaultClient, "http://localhost:9999/", "sk")
	assert.Equal(t, "http://localhost:9999", client.baseURL)
}
