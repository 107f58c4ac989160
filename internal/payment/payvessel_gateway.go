package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"payvessel-bridge/internal/config"
	"payvessel-bridge/internal/logger"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"
)

const (
	transactionPath = "/api/v2/transactions/"
	browserUA       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Payvessel sits behind bot detection, so lookups go out with a browser's
// header set. Accept-Encoding is set by hand, which turns off the transport's
// transparent gzip; readBody decodes instead.
var browserHeaders = map[string]string{
	"User-Agent":                browserUA,
	"Accept":                    "application/json, text/plain, */*",
	"Accept-Language":           "en-US,en;q=0.9",
	"Accept-Encoding":           "gzip, deflate",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "empty",
	"Sec-Fetch-Mode":            "cors",
	"Sec-Fetch-Site":            "cross-site",
	"Sec-Fetch-User":            "?1",
	"Cache-Control":             "no-cache",
}

type payvesselGateway struct {
	baseURL    string
	apiKey     string
	secretKey  string
	businessID string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewPayvesselGateway(cfg config.PayvesselConfig) Gateway {
	if !cfg.HasCredentials() {
		logger.L().Warn("Payvessel credentials are empty, lookups will be refused")
	}

	return &payvesselGateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		secretKey:  cfg.SecretKey,
		businessID: cfg.BusinessID,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ----------------- GetTransaction -----------------

func (p *payvesselGateway) GetTransaction(ctx context.Context, reference string) (*Transaction, error) {
	log := logger.FromCtx(ctx)

	endpoint := p.baseURL + transactionPath + url.PathEscape(reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error("Failed building request", zap.Error(err))
		return nil, err
	}

	req.Header.Set("api-key", p.apiKey)
	req.Header.Set("secret-key", p.secretKey)
	req.Header.Set("business-id", p.businessID)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Error("Request to Payvessel failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body is only for the log; an unreadable one must not hide the status.
		bodyBytes, readErr := readBody(resp)
		log.Warn("Payvessel returned non-success status",
			zap.Int("http_status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
			zap.NamedError("read_error", readErr),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: bodyBytes}
	}

	bodyBytes, err := readBody(resp)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read payvessel response: %w", err)
	}

	tx, err := decodeTransaction(bodyBytes)
	if err != nil {
		log.Warn("Unusable Payvessel response", zap.Error(err))
		return nil, err
	}

	log.Debug("Payvessel transaction fetched", zap.Any("status", tx.Status))
	return tx, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body

	switch enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))); enc {
	case "", "identity":
	case "gzip", "x-gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case "deflate":
		zr, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}

	return io.ReadAll(r)
}

// decodeTransaction accepts either {"transaction": {...}} or the record at
// the top level, preferring the nested form.
func decodeTransaction(body []byte) (*Transaction, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed decoding payvessel response: %w", err)
	}

	record := payload
	if obj, ok := payload.(map[string]any); ok {
		if nested, ok := obj["transaction"]; ok && truthy(nested) {
			record = nested
		}
	}

	fields, ok := record.(map[string]any)
	if !ok {
		return nil, ErrNoTransaction
	}

	return &Transaction{
		Reference: fields["reference"],
		Amount:    fields["amount"],
		Status:    fields["status"],
	}, nil
}
