package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParsePaginationDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)

	skip, limit := ParsePagination(req, 50, 100)
	if skip != 0 || limit != 50 {
		t.Fatalf("skip = %d limit = %d, want 0 50", skip, limit)
	}
}

func TestParsePaginationClamps(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?skip=-5&limit=9999", nil)

	skip, limit := ParsePagination(req, 50, 100)
	if skip != 0 {
		t.Fatalf("skip = %d, want 0", skip)
	}
	if limit != 100 {
		t.Fatalf("limit = %d, want 100", limit)
	}
}

func TestParsePaginationExplicit(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?skip=20&limit=10", nil)

	skip, limit := ParsePagination(req, 50, 100)
	if skip != 20 || limit != 10 {
		t.Fatalf("skip = %d limit = %d, want 20 10", skip, limit)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(2.125); got != 2.13 {
		t.Fatalf("Round2(2.125) = %v, want 2.13", got)
	}
	if got := Round2(800.0); got != 800.0 {
		t.Fatalf("Round2(800) = %v, want 800", got)
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(4.25); got != 4.3 {
		t.Fatalf("Round1(4.25) = %v, want 4.3", got)
	}
	if got := Round1(4.0); got != 4.0 {
		t.Fatalf("Round1(4.0) = %v, want 4.0", got)
	}
}
