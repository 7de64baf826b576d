package sealed

import (
	"bytes"
	"testing"
)

func TestValue_BytesCopies(t *testing.T) {
	src := []byte("0123456789abXYZ")
	v := Wrap(src)

	src[0] = 'Q'
	if v.Bytes()[0] == 'Q' {
		t.Fatalf("Wrap did not copy its input")
	}

	b := v.Bytes()
	b[1] = 'Q'
	if v.Bytes()[1] == 'Q' {
		t.Fatalf("Bytes did not return a copy")
	}
}

func TestValue_HandleRoundTrip(t *testing.T) {
	v := Wrap([]byte("0123456789abciphertext"))
	h := v.Handle()

	got, err := ValueFromHandle(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got.Bytes(), v.Bytes()) {
		t.Fatalf("round trip mismatch")
	}
}

func TestValueFromHandle_Malformed(t *testing.T) {
	if _, err := ValueFromHandle("%%%not-base64%%%"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
	if _, err := ValueFromHandle("c2hvcnQ="); err == nil {
		t.Fatalf("expected error for blob shorter than nonce")
	}
}

func TestValue_IsZero(t *testing.T) {
	var v Value
	if !v.IsZero() {
		t.Fatalf("zero value should be zero")
	}
	if Wrap([]byte("0123456789abx")).IsZero() {
		t.Fatalf("wrapped value should not be zero")
	}
}
