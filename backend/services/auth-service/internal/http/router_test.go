package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hackathon/backend/libs/authclient"
	"hackathon/backend/libs/httpclient"
	"hackathon/backend/services/auth-service/internal/http/handlers"
	"hackathon/backend/services/auth-service/internal/password"
	"hackathon/backend/services/auth-service/internal/repository"
	"hackathon/backend/services/auth-service/internal/service"
)

func newTestServer(t *testing.T, check handlers.HealthCheck) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	svc := service.NewAuthService(repository.NewMemoryUserStore(), password.NewBcryptHasher(bcrypt.MinCost), logger)

	router := NewRouter(Routes{
		Signup: handlers.NewSignupHandler(svc, logger),
		Signin: handlers.NewSigninHandler(svc, logger),
		Health: handlers.NewHealthHandler(check),
	})
	srv := httptest.NewServer(RecoveryMiddleware(logger)(LoggingMiddleware(logger)(router)))
	t.Cleanup(srv.Close)
	return srv
}

func decodeEnvelope(t *testing.T, resp *http.Response) httpclient.ErrorEnvelope {
	t.Helper()
	var env httpclient.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env
}

func newAuthClient(t *testing.T, baseURL string) *authclient.Client {
	t.Helper()
	httpClient, err := httpclient.New(baseURL, httpclient.WithRequestIDs())
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	return authclient.New(authclient.WithHTTPClient(httpClient))
}

func TestAuthClientAgainstService(t *testing.T) {
	srv := newTestServer(t, nil)
	client := newAuthClient(t, srv.URL)
	ctx := context.Background()

	signup, err := client.SignUp(ctx, authclient.SignUpCredentials("a@b.com", "secret", authclient.RoleHiringCompany))
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if signup.Email != "a@b.com" || signup.Message != "User created successfully" {
		t.Fatalf("unexpected signup response %+v", signup)
	}

	_, err = client.SignUp(ctx, authclient.SignUpCredentials("a@b.com", "secret", authclient.RoleHiringCompany))
	netErr, ok := httpclient.AsError(err)
	if !ok || netErr.Status != http.StatusConflict || netErr.Detail != "Email already exists" {
		t.Fatalf("expected conflict, got %v", err)
	}

	signin, err := client.SignIn(ctx, authclient.SignInCredentials("a@b.com", "secret"))
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	role, err := signin.RequireRole()
	if err != nil || role != authclient.RoleHiringCompany {
		t.Fatalf("role = %q, %v", role, err)
	}

	_, err = client.SignIn(ctx, authclient.SignInCredentials("a@b.com", "wrong"))
	netErr, ok = httpclient.AsError(err)
	if !ok || netErr.Status != http.StatusUnauthorized || netErr.Detail != "Invalid email or password" {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if msg := authclient.UserMessage(authclient.OpSignIn, err); msg != "Sign In Failed: Invalid email or password." {
		t.Fatalf("unexpected user message %q", msg)
	}
}

func TestSignupValidationResponses(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name      string
		body      string
		status    int
		wantError string
	}{
		{name: "invalid json", body: `{`, status: http.StatusBadRequest, wantError: `"invalid JSON body"`},
		{name: "missing role", body: `{"email":"a@b.com","password":"x"}`, status: http.StatusBadRequest, wantError: `"Role is required"`},
		{name: "bad role", body: `{"email":"a@b.com","password":"x","role":"admin"}`, status: http.StatusBadRequest, wantError: `"Invalid role"`},
		{name: "missing password", body: `{"email":"a@b.com","role":"student"}`, status: http.StatusBadRequest, wantError: `"Email and password are required"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/auth/signup", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("post: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !strings.Contains(string(body), tt.wantError) {
				t.Fatalf("body %q does not contain %s", body, tt.wantError)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/auth/signin")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed || resp.Header.Get("Allow") != http.MethodPost {
		t.Fatalf("unexpected response %d allow=%q", resp.StatusCode, resp.Header.Get("Allow"))
	}
	if env := decodeEnvelope(t, resp); env.Error != "method GET not allowed" {
		t.Fatalf("unexpected error %q", env.Error)
	}

	httpClient, err := httpclient.New(srv.URL)
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	_, err = httpclient.Put[authclient.Credentials, authclient.AuthResponse](context.Background(), httpClient, "auth/signin", authclient.SignInCredentials("a@b.com", "x"))
	netErr, ok := httpclient.AsError(err)
	if !ok || netErr.Status != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 request failure, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	healthy := newTestServer(t, nil)
	resp, err := http.Get(healthy.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	down := newTestServer(t, func(context.Context) error { return errors.New("db down") })
	resp, err = http.Get(down.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if env := decodeEnvelope(t, resp); env.Error != "storage unavailable" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
