package verify

import (
	"context"
	"errors"
	"strings"

	"payvessel-bridge/internal/logger"
	"payvessel-bridge/internal/payment"

	"go.uber.org/zap"
)

// Result is the signed confirmation returned for a successful transaction.
// Amount keeps the gateway's JSON representation.
type Result struct {
	Reference string `json:"reference"`
	Amount    any    `json:"amount"`
	Signature string `json:"signature"`
}

// Secrets are resolved by the caller and injected; the service never reads
// the environment.
type Secrets struct {
	GatewayAPIKey    string
	GatewaySecretKey string
	BridgeSecret     string
}

type Service interface {
	Verify(ctx context.Context, reference string) (*Result, error)
}

type service struct {
	gateway payment.Gateway
	secrets Secrets
}

func NewService(gateway payment.Gateway, secrets Secrets) Service {
	return &service{gateway: gateway, secrets: secrets}
}

func (s *service) Verify(ctx context.Context, reference string) (*Result, error) {
	if s.secrets.GatewayAPIKey == "" || s.secrets.GatewaySecretKey == "" {
		return nil, errServerMisconfiguration()
	}

	if reference == "" {
		return nil, errMissingReference()
	}

	tx, err := s.gateway.GetTransaction(ctx, reference)
	if err != nil {
		var statusErr *payment.StatusError
		switch {
		case errors.As(err, &statusErr):
			return nil, gatewayHTTPError(statusErr.StatusCode, err)
		case errors.Is(err, payment.ErrNoTransaction):
			return nil, errTransactionNotFound(err)
		default:
			return nil, unhandled(err)
		}
	}

	if !tx.HasAmount() {
		return nil, errTransactionNotFound(nil)
	}

	// Any status containing "success" passes, e.g. "successful".
	if !strings.Contains(tx.StatusString(), "success") {
		logger.FromCtx(ctx).Info("transaction not successful", zap.String("status", tx.StatusString()))
		return nil, errTransactionNotSuccessful()
	}

	ref := reference
	if tx.HasReference() {
		ref = tx.ReferenceString()
	}

	return &Result{
		Reference: ref,
		Amount:    tx.Amount,
		Signature: Sign(ref, tx.AmountString(), s.secrets.BridgeSecret),
	}, nil
}
