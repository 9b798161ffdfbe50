package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mfrida/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := CreateAccessToken("user-1", "a@b.com", "customer")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" || claims.Role != "customer" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateJWTExpired(t *testing.T) {
	expired := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateJWT(raw); err == nil || err.Error() != "token has expired" {
		t.Fatalf("err = %v, want token has expired", err)
	}
}

func TestValidateJWTGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func handlerRecordingUser(got *string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*got, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	var got string
	h := Authenticate(handlerRecordingUser(&got))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInjectsPrincipal(t *testing.T) {
	token, _ := CreateAccessToken("user-42", "x@y.com", "customer")

	var got string
	h := Authenticate(handlerRecordingUser(&got))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != "user-42" {
		t.Fatalf("user id in context = %q, want user-42", got)
	}
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	token, _ := CreateAccessToken("user-1", "a@b.com", "customer")

	h := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	token, _ := CreateAccessToken("admin-1", "root@b.com", "admin")

	h := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestOptionalAuthenticateAnonymous(t *testing.T) {
	var got string
	h := OptionalAuthenticate(handlerRecordingUser(&got))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	h(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != "" {
		t.Fatalf("user id = %q, want empty", got)
	}
}
