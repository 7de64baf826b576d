package vault

import (
	"context"
	"fmt"
	"sync"

	"github.com/avolkovx/privseal/internal/sealed"
	"github.com/google/uuid"
)

// CallbackFunc is the service entry point a gateway delivers results to.
type CallbackFunc func(ctx context.Context, requestID string, payload, proof []byte) error

// SimGateway is an in-process gateway for development and tests. It records
// requests and delivers callbacks only when told to, so tests control whether
// a callback arrives, arrives late, or never arrives.
type SimGateway struct {
	enc     *AESGCM
	handler CallbackFunc

	mu      sync.Mutex
	pending map[string][]sealed.Handle
}

func NewSimGateway(enc *AESGCM) *SimGateway {
	return &SimGateway{
		enc:     enc,
		pending: make(map[string][]sealed.Handle),
	}
}

// SetHandler wires the callback destination. Done after service construction
// since the gateway and the request manager reference each other.
func (g *SimGateway) SetHandler(h CallbackFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handler = h
}

func (g *SimGateway) RequestDecryption(ctx context.Context, handles []sealed.Handle) (string, error) {
	id := uuid.NewString()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending[id] = handles
	return id, nil
}

// Deliver decrypts the recorded handles for requestID and pushes the signed
// result into the callback handler. The first handle is the score, the
// second the risk level, matching the order the request manager submits.
func (g *SimGateway) Deliver(ctx context.Context, requestID string) error {
	g.mu.Lock()
	handles, ok := g.pending[requestID]
	handler := g.handler
	g.mu.Unlock()

	if !ok {
		return fmt.Errorf("unknown request id %q", requestID)
	}
	if handler == nil {
		return fmt.Errorf("no callback handler wired")
	}
	if len(handles) != 2 {
		return fmt.Errorf("expected 2 handles, got %d", len(handles))
	}

	var values [2]int64
	for i, h := range handles {
		v, err := sealed.ValueFromHandle(h)
		if err != nil {
			return err
		}
		n, err := g.enc.Open(v)
		if err != nil {
			return err
		}
		values[i] = n
	}

	payload, err := EncodeCleartext(Cleartext{Score: values[0], RiskLevel: values[1]})
	if err != nil {
		return err
	}

	return handler(ctx, requestID, payload, g.enc.Sign(requestID, payload))
}
