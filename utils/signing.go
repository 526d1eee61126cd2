package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

// NewSignatureToken returns a URL-safe random token and its SHA-256 hex hash.
// Only the hash is persisted; the raw token goes to the invitee once.
func NewSignatureToken() (token string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, HashToken(token), nil
}

// HashToken returns the SHA-256 hex digest used to look tokens up.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// HashDocument returns the SHA-256 hex digest of document bytes.
func HashDocument(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CanonicalJSON re-encodes a JSON document with object keys sorted, so the
// same logical payload always maps to the same bytes no matter what produced
// it. Certificates are signed and verified over this form.
func CanonicalJSON(payload []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// SignCertificate computes the HMAC-SHA256 over a signature certificate
// payload so its integrity can be verified offline.
func SignCertificate(secretKey string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// SecureCompare performs constant-time string comparison to prevent timing
// attacks. This MUST be used when comparing signatures.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
