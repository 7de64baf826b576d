package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/sethvargo/go-retry"
)

// HTTPGateway submits decryption requests to an external gateway over HTTP.
// The gateway answers with the request id it assigned; the decrypted result
// arrives later through the service's callback RPC, or never.
type HTTPGateway struct {
	endpoint string
	client   *http.Client
}

func NewHTTPGateway(endpoint string) *HTTPGateway {
	return &HTTPGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type gatewayRequest struct {
	Handles []sealed.Handle `json:"handles"`
}

type gatewayResponse struct {
	RequestID string `json:"request_id"`
}

func (g *HTTPGateway) RequestDecryption(ctx context.Context, handles []sealed.Handle) (string, error) {
	body, err := json.Marshal(gatewayRequest{Handles: handles})
	if err != nil {
		return "", err
	}

	var requestID string

	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("gateway unavailable: %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("gateway rejected request: %s; body: %s", resp.Status, string(b))
		}

		var gr gatewayResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return err
		}
		if gr.RequestID == "" {
			return fmt.Errorf("gateway returned empty request id")
		}
		requestID = gr.RequestID
		return nil
	})
	if err != nil {
		return "", err
	}

	return requestID, nil
}
