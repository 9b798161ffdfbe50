package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(getEnv("JWT_SECRET", "mfrida-fragrance-secret-key-2025"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"
const EmailKey ContextKey = "email"

var Ctx = context.Background()

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
