package utils

import (
	"math"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// --- Pagination ---

// ParsePagination reads skip/limit query params, clamping limit to [1, max].
func ParsePagination(r *http.Request, def, max int64) (skip, limit int64) {
	q := r.URL.Query()

	skip, _ = strconv.ParseInt(q.Get("skip"), 10, 64)
	if skip < 0 {
		skip = 0
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return skip, limit
}

// --- Money / rating rounding ---

// Round2 rounds half-up to two decimal places, the rule used for all prices.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds half-up to one decimal place, used for aggregate ratings.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		http.Error(w, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF, BMP, TIFF.", http.StatusBadRequest)
		return false
	}
	return true
}
