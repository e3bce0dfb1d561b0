package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

const (
	SignatureHeader = "x-paystack-signature"

	EVENT_CHARGE_SUCCESS = "charge.success"
)

type WebhookEvent struct {
	Event string      `json:"event"`
	Data  Transaction `json:"data"`
}

// VerifySignature checks the HMAC-SHA512 of payload, keyed with the secret
// key, against the hex signature Paystack sends in SignatureHeader.
func VerifySignature(secretKey string, payload []byte, signature string) error {
	if signature == "" {
		return NewInvalidSignatureError("Missing webhook signature")
	}

	given, err := hex.DecodeString(signature)
	if err != nil {
		return NewInvalidSignatureError("Webhook signature is not hex encoded")
	}

	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(payload)

	if !hmac.Equal(given, mac.Sum(nil)) {
		return NewInvalidSignatureError("Webhook signature does not match payload")
	}

	return nil
}

// ParseWebhook authenticates and decodes a webhook delivery.
func ParseWebhook(secretKey string, payload []byte, signature string) (WebhookEvent, error) {
	err := VerifySignature(secretKey, payload, signature)
	if err != nil {
		return WebhookEvent{}, err
	}

	var event WebhookEvent
	err = json.Unmarshal(payload, &event)
	if err != nil {
		return WebhookEvent{}, NewInvalidPayloadError("Failed to decode webhook payload", err)
	}

	return event, nil
}

// Sign produces the signature Paystack would send for payload.
func Sign(secretKey string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
