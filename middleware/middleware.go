package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mfrida/globals"
	"mfrida/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const accessTokenTTL = 30 * 24 * time.Hour

// JWT claims
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CreateAccessToken issues a signed token carrying the user's identity and role.
func CreateAccessToken(userID, email, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// ValidateJWT verifies a raw token string and returns its claims.
// Expired tokens are reported distinctly; every other failure collapses to
// a generic error so callers can't probe which check failed.
func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		return nil, errors.New("could not validate credentials")
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("could not validate credentials")
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 8 || h[:7] != "Bearer " {
		return "", false
	}
	return h[7:], true
}

// Authenticate requires a valid bearer token and injects the verified
// principal into the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		raw, ok := bearerToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "could not validate credentials")
			return
		}

		claims, err := ValidateJWT(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		ctx = context.WithValue(ctx, globals.EmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuthenticate injects the principal when a valid token is present
// and lets anonymous requests through untouched. Used on public listings
// where admins see extra data.
func OptionalAuthenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if raw, ok := bearerToken(r); ok {
			if claims, err := ValidateJWT(raw); err == nil {
				ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
				ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
				ctx = context.WithValue(ctx, globals.EmailKey, claims.Email)
				r = r.WithContext(ctx)
			}
		}
		next(w, r, ps)
	}
}

// RequireAdmin is Authenticate plus a role gate.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		role, _ := r.Context().Value(globals.RoleKey).(string)
		if role != "admin" {
			utils.RespondWithError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r, ps)
	})
}
