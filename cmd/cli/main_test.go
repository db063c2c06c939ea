package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestGetSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"free_cash":"1000"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second
	token = "token-123"
	defer func() { token = "" }()

	result := get("/api/v1/adjustments/free-cash")

	if gotAuth != "Bearer token-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	if result["free_cash"] != "1000" {
		t.Fatalf("expected free_cash 1000, got %v", result["free_cash"])
	}
}

func TestShowFreeCash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/adjustments/free-cash" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"free_cash":"12345.67"}`))
	}))
	defer server.Close()

	baseURL = server.URL
	timeout = 5 * time.Second

	out := captureOutput(t, func() {
		showFreeCash()
	})

	if !strings.Contains(out, "12345.67") {
		t.Fatalf("expected free cash in output, got %q", out)
	}
}
