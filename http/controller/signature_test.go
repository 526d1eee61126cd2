package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contractify/contractify-backend/config"
	"github.com/contractify/contractify-backend/utils"
	"github.com/gin-gonic/gin"
)

const testCertificateSecret = "certificate-test-secret"

func newCertificateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.EnvConfig{}
	cfg.Signature.TokenSecret = testCertificateSecret
	ctrl := &Controller{Config: &config.Config{EnvConfig: cfg}}

	r := gin.New()
	r.POST("/api/signatures/certificates/verify", ctrl.VerifyCertificate)
	return r
}

func issueTestCertificate(t *testing.T) map[string]any {
	t.Helper()
	certificate := map[string]any{
		"contractId":    "3e7c1a52-8a4f-4a2b-9b7d-1c2d3e4f5a6b",
		"contractTitle": "Contrato de Arrendamiento",
		"signatures": []map[string]any{
			{"signerName": "Ana García", "signerEmail": "ana@example.com"},
		},
	}
	payload, err := json.Marshal(certificate)
	if err != nil {
		t.Fatalf("marshal certificate: %v", err)
	}
	canonical, err := utils.CanonicalJSON(payload)
	if err != nil {
		t.Fatalf("canonicalize certificate: %v", err)
	}
	certificate["hmac"] = utils.SignCertificate(testCertificateSecret, canonical)
	return certificate
}

func postCertificate(t *testing.T, r *gin.Engine, certificate map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"certificate": certificate})
	req := httptest.NewRequest(http.MethodPost, "/api/signatures/certificates/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyCertificateAccepted(t *testing.T) {
	r := newCertificateRouter()
	w := postCertificate(t, r, issueTestCertificate(t))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["valid"] != true {
		t.Errorf("untampered certificate rejected: %s", w.Body.String())
	}
}

func TestVerifyCertificateTampered(t *testing.T) {
	r := newCertificateRouter()
	certificate := issueTestCertificate(t)
	certificate["contractTitle"] = "Otro Contrato"
	w := postCertificate(t, r, certificate)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["valid"] != false {
		t.Errorf("tampered certificate accepted: %s", w.Body.String())
	}
}

func TestVerifyCertificateWrongHMAC(t *testing.T) {
	r := newCertificateRouter()
	certificate := issueTestCertificate(t)
	certificate["hmac"] = utils.SignCertificate("other-secret", []byte("x"))
	w := postCertificate(t, r, certificate)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["valid"] != false {
		t.Error("certificate with a foreign HMAC accepted")
	}
}

func TestVerifyCertificateMissingHMAC(t *testing.T) {
	r := newCertificateRouter()
	certificate := issueTestCertificate(t)
	delete(certificate, "hmac")
	w := postCertificate(t, r, certificate)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a certificate without hmac", w.Code)
	}
}
