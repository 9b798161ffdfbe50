package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mfrida/db"
	"mfrida/globals"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSummarizeRatings(t *testing.T) {
	average, total, histogram := summarizeRatings([]int{5, 3, 4})

	if average != 4.0 {
		t.Fatalf("average = %v, want 4.0", average)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if histogram[5] != 1 || histogram[4] != 1 || histogram[3] != 1 {
		t.Fatalf("histogram = %v", histogram)
	}
	if histogram[1] != 0 || histogram[2] != 0 {
		t.Fatalf("expected zero-filled buckets, got %v", histogram)
	}
}

func TestSummarizeRatingsEmpty(t *testing.T) {
	average, total, histogram := summarizeRatings(nil)

	if average != 0 || total != 0 {
		t.Fatalf("average = %v total = %d, want zeros", average, total)
	}
	for bucket := 1; bucket <= 5; bucket++ {
		if histogram[bucket] != 0 {
			t.Fatalf("bucket %d = %d, want 0", bucket, histogram[bucket])
		}
	}
}

func TestUpdateOwnReviewNotOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("someone else's review reads as absent", func(mt *mtest.T) {
		orig := db.ReviewsCollection
		db.ReviewsCollection = mt.Coll
		defer func() { db.ReviewsCollection = orig }()

		// owner-filtered lookup finds nothing for this caller
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mfridadb.reviews", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodPut, "/api/reviews/rev-1/own", strings.NewReader(`{"rating":4}`))
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "someone-else"))
		rec := httptest.NewRecorder()

		UpdateOwnReview(rec, req, httprouter.Params{{Key: "reviewid", Value: "rev-1"}})

		if rec.Code != http.StatusNotFound {
			mt.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestSummarizeRatingsRounding(t *testing.T) {
	// mean of 4, 4, 5 is 4.333..., published as 4.3
	average, _, _ := summarizeRatings([]int{4, 4, 5})
	if average != 4.3 {
		t.Fatalf("average = %v, want 4.3", average)
	}

	// mean of 4, 5 is 4.5, stays 4.5
	average, _, _ = summarizeRatings([]int{4, 5})
	if average != 4.5 {
		t.Fatalf("average = %v, want 4.5", average)
	}
}
