// Package sealed defines the opaque container for sealed numeric fields.
//
// A Value carries ciphertext produced by the vault encryptor. Nothing outside
// the vault collaborator can read or branch on the sealed content; the rest
// of the system only stores, copies, and hands values to the decryption
// gateway as opaque handles.
package sealed

import (
	"encoding/base64"
	"fmt"
)

// NonceSize is the AES-GCM nonce length prepended to the ciphertext in the
// storage encoding.
const NonceSize = 12

// Value is an opaque sealed container.
type Value struct {
	blob []byte
}

// Wrap builds a Value from its storage encoding (nonce || ciphertext).
// Only the vault encryptor produces well-formed blobs.
func Wrap(blob []byte) Value {
	b := make([]byte, len(blob))
	copy(b, blob)
	return Value{blob: b}
}

// Bytes returns the storage encoding of the value.
func (v Value) Bytes() []byte {
	b := make([]byte, len(v.blob))
	copy(b, v.blob)
	return b
}

// IsZero reports whether the value holds no sealed content.
func (v Value) IsZero() bool {
	return len(v.blob) == 0
}

// Handle is the form in which a sealed value is submitted to the decryption
// gateway: a printable token with no extractable content.
type Handle string

// Handle encodes the value for gateway submission.
func (v Value) Handle() Handle {
	return Handle(base64.StdEncoding.EncodeToString(v.blob))
}

// ValueFromHandle decodes a gateway handle back into a sealed value.
func ValueFromHandle(h Handle) (Value, error) {
	b, err := base64.StdEncoding.DecodeString(string(h))
	if err != nil {
		return Value{}, fmt.Errorf("malformed handle: %w", err)
	}
	if len(b) < NonceSize {
		return Value{}, fmt.Errorf("malformed handle: blob too short")
	}
	return Value{blob: b}, nil
}
