// Package vault holds the cryptographic collaborators of the review core:
// the Encryptor that seals numeric fields, and the Gateway contract through
// which sealed values are asynchronously decrypted. The review core never
// touches key material or cleartext directly; it moves sealed.Value blobs
// around and trusts callbacks only after CheckSignature.
package vault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/avolkovx/privseal/internal/common"
	"github.com/avolkovx/privseal/internal/sealed"
	"golang.org/x/crypto/argon2"
)

// Encryptor is the sealing collaborator used by the review services.
type Encryptor interface {
	// Seal tags a numeric value as sealed.
	Seal(n int64) (sealed.Value, error)

	// Allow grants an actor a decryption capability on the value.
	Allow(v sealed.Value, actor string) error

	// CheckSignature verifies a gateway callback proof before the payload
	// may be trusted. Returns common.ErrorUnauthorized on mismatch.
	CheckSignature(requestID string, payload, proof []byte) error
}

// Gateway is the asynchronous decryption collaborator. RequestDecryption is
// fire-and-forget: the result arrives later, if at all, through the service's
// callback entry point.
type Gateway interface {
	RequestDecryption(ctx context.Context, handles []sealed.Handle) (string, error)
}

// Cleartext is the decoded callback payload.
type Cleartext struct {
	Score     int64 `json:"score"`
	RiskLevel int64 `json:"risk_level"`
}

// EncodeCleartext serializes a callback payload.
func EncodeCleartext(c Cleartext) ([]byte, error) {
	return json.Marshal(c)
}

// DecodeCleartext parses a verified callback payload.
func DecodeCleartext(b []byte) (Cleartext, error) {
	var c Cleartext
	if err := json.Unmarshal(b, &c); err != nil {
		return Cleartext{}, fmt.Errorf("malformed cleartext payload: %w", err)
	}
	return c, nil
}

// DeriveKey stretches a passphrase and salt into a 32-byte AES key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// AESGCM seals int64 values with AES-256-GCM and authenticates gateway
// callbacks with an HMAC key shared with the gateway.
type AESGCM struct {
	aead       cipher.AEAD
	gatewayKey []byte

	mu     sync.Mutex
	grants map[string]map[string]struct{} // value digest -> actor set
}

// NewAESGCM builds an encryptor from a 32-byte sealing key and the HMAC key
// shared with the decryption gateway.
func NewAESGCM(key, gatewayKey []byte) (*AESGCM, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("sealing key: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESGCM{
		aead:       aead,
		gatewayKey: gatewayKey,
		grants:     make(map[string]map[string]struct{}),
	}, nil
}

func (e *AESGCM) Seal(n int64) (sealed.Value, error) {
	plaintext, err := json.Marshal(n)
	if err != nil {
		return sealed.Value{}, err
	}

	nonce := common.GenerateRandByteArray(sealed.NonceSize)
	ciphertext := e.aead.Seal(nil, nonce, plaintext, nil)

	return sealed.Wrap(append(nonce, ciphertext...)), nil
}

// Open decrypts a sealed value. It exists for the gateway side of the
// protocol (the simulator shares the encryptor); review services never
// call it.
func (e *AESGCM) Open(v sealed.Value) (int64, error) {
	blob := v.Bytes()
	if len(blob) < sealed.NonceSize {
		return 0, fmt.Errorf("sealed blob too short")
	}
	plaintext, err := e.aead.Open(nil, blob[:sealed.NonceSize], blob[sealed.NonceSize:], nil)
	if err != nil {
		return 0, fmt.Errorf("open sealed value: %w", err)
	}
	var n int64
	if err := json.Unmarshal(plaintext, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (e *AESGCM) Allow(v sealed.Value, actor string) error {
	if v.IsZero() {
		return fmt.Errorf("allow on empty sealed value")
	}
	d := digest(v)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.grants[d] == nil {
		e.grants[d] = make(map[string]struct{})
	}
	e.grants[d][actor] = struct{}{}
	return nil
}

// Allowed reports whether the actor holds a decryption grant on the value.
func (e *AESGCM) Allowed(v sealed.Value, actor string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.grants[digest(v)][actor]
	return ok
}

// Sign produces the callback proof for a payload. The gateway side holds the
// same HMAC key and signs every callback it delivers.
func (e *AESGCM) Sign(requestID string, payload []byte) []byte {
	mac := hmac.New(sha256.New, e.gatewayKey)
	mac.Write([]byte(requestID))
	mac.Write([]byte{'.'})
	mac.Write(payload)
	return mac.Sum(nil)
}

func (e *AESGCM) CheckSignature(requestID string, payload, proof []byte) error {
	want := e.Sign(requestID, payload)
	if subtle.ConstantTimeCompare(want, proof) != 1 {
		return common.ErrorUnauthorized
	}
	return nil
}

func digest(v sealed.Value) string {
	sum := sha256.Sum256(v.Bytes())
	return string(sum[:])
}
