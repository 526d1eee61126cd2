package utils

import (
	"strings"
	"testing"
)

func TestNewSignatureToken(t *testing.T) {
	token, hash, err := NewSignatureToken()
	if err != nil {
		t.Fatalf("NewSignatureToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token %q is not URL-safe", token)
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(hash))
	}
	if HashToken(token) != hash {
		t.Error("returned hash does not match HashToken of the raw token")
	}

	token2, hash2, _ := NewSignatureToken()
	if token == token2 || hash == hash2 {
		t.Error("two tokens collided")
	}
}

func TestHashDocument(t *testing.T) {
	a := HashDocument([]byte("pdf bytes"))
	b := HashDocument([]byte("pdf bytes"))
	c := HashDocument([]byte("other bytes"))
	if a != b {
		t.Error("same input hashed differently")
	}
	if a == c {
		t.Error("different inputs collided")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}

func TestSignCertificate(t *testing.T) {
	payload := []byte(`{"contractId":"abc"}`)
	sig := SignCertificate("secret", payload)
	if sig != SignCertificate("secret", payload) {
		t.Error("HMAC is not deterministic")
	}
	if sig == SignCertificate("other-secret", payload) {
		t.Error("different keys produced the same HMAC")
	}
	if sig == SignCertificate("secret", []byte(`{"contractId":"xyz"}`)) {
		t.Error("different payloads produced the same HMAC")
	}
}

func TestCanonicalJSON(t *testing.T) {
	a, err := CanonicalJSON([]byte(`{"b":2,"a":{"y":1,"x":"v"}}`))
	if err != nil {
		t.Fatalf("CanonicalJSON: %v", err)
	}
	b, err := CanonicalJSON([]byte(`{"a":{"x":"v","y":1},"b":2}`))
	if err != nil {
		t.Fatalf("CanonicalJSON: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("key order changed the canonical bytes: %s vs %s", a, b)
	}

	if _, err := CanonicalJSON([]byte(`{broken`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestSignCertificateSurvivesDecode(t *testing.T) {
	issued, _ := CanonicalJSON([]byte(`{"contractId":"abc","signatures":[{"signerName":"Ana","version":2}]}`))
	sig := SignCertificate("secret", issued)

	// A verifier that decoded the certificate and re-encoded it must arrive
	// at the same HMAC.
	decoded, _ := CanonicalJSON(issued)
	if SignCertificate("secret", decoded) != sig {
		t.Error("canonical form is not stable across decode/encode")
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare("abc", "abc") {
		t.Error("equal strings compared unequal")
	}
	if SecureCompare("abc", "abd") || SecureCompare("abc", "abcd") {
		t.Error("unequal strings compared equal")
	}
}
