package utils

import (
	"net/http"

	"mfrida/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		return ""
	}
	return userID
}

func GetRoleFromRequest(r *http.Request) string {
	role, _ := r.Context().Value(globals.RoleKey).(string)
	return role
}

func IsAdmin(r *http.Request) bool {
	return GetRoleFromRequest(r) == "admin"
}
