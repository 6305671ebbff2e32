package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmarkov/authhub/internal/handler"
)

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
		t.Fatalf("decode message body: %v", err)
	}
	return msg
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func TestIntegration_RegisterLoginProfile(t *testing.T) {
	auth, profiles := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, profiles)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := srv.Client()

	// 1. Register a new user.
	resp := postJSON(t, client, srv.URL+"/api/auth/register", map[string]string{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.StatusCode)
	}
	var msg string
	decodeBody(t, resp, &msg)
	if msg != "User registered successfully" {
		t.Fatalf("register: expected success message, got %q", msg)
	}

	// 2. A second register with the same email fails.
	resp = postJSON(t, client, srv.URL+"/api/auth/register", map[string]string{
		"name":     "Ana Again",
		"email":    "ana@x.com",
		"password": "other456",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &msg)
	if msg != "User already exists" {
		t.Fatalf("duplicate register: expected %q, got %q", "User already exists", msg)
	}

	// 3. Login with an unknown email.
	resp = postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown login: expected 404, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &msg)
	if msg != "User not found" {
		t.Fatalf("unknown login: expected %q, got %q", "User not found", msg)
	}

	// 4. Login with the wrong password.
	resp = postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email":    "ana@x.com",
		"password": "wrongpass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &msg)
	if msg != "Wrong password" {
		t.Fatalf("wrong password: expected %q, got %q", "Wrong password", msg)
	}

	// 5. Login with the correct credentials.
	resp = postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email":    "ana@x.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var loginBody struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &loginBody)
	if loginBody.Token == "" {
		t.Fatal("login: expected a token string")
	}

	// 6. Profile without a token is rejected.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/user/profile", nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("GET /api/user/profile: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("profile without token: expected 401, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &msg)
	if msg != "No token" {
		t.Fatalf("profile without token: expected %q, got %q", "No token", msg)
	}

	// 7. Profile with the token returns user fields and null optionals.
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginBody.Token)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("GET /api/user/profile: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", resp.StatusCode)
	}
	var profile struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Bio     *string `json:"bio"`
	}
	decodeBody(t, resp, &profile)
	if profile.Name != "Ana" || profile.Email != "ana@x.com" {
		t.Fatalf("profile: unexpected identity fields: %+v", profile)
	}
	if profile.Address != nil || profile.Phone != nil || profile.Bio != nil {
		t.Fatalf("profile: expected null optional fields, got %+v", profile)
	}
}

func TestIntegration_Liveness(t *testing.T) {
	auth, profiles := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, profiles)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "AuthHub Backend Running" {
		t.Fatalf("expected liveness text, got %q", string(body))
	}
}

func TestIntegration_Healthz(t *testing.T) {
	auth, profiles := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, profiles)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var status map[string]string
	decodeBody(t, resp, &status)
	if status["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", status)
	}
}
