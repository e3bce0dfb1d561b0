package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type parameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// paystackSecretKey prefers the key set directly in the environment and
// otherwise reads the encrypted SSM parameter.
func paystackSecretKey(ctx context.Context, cfg Config, client parameterGetter) (string, error) {
	if cfg.PaystackSecretKey != "" {
		return cfg.PaystackSecretKey, nil
	}

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(cfg.PaystackSecretKeyParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get paystack secret key from ssm: %w", err)
	}

	key := aws.ToString(out.Parameter.Value)
	if key == "" {
		return "", fmt.Errorf("ssm parameter %q is empty", cfg.PaystackSecretKeyParam)
	}

	return key, nil
}
