package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// summarizeRatings reduces a rating sample to the published aggregate:
// the mean rounded to one decimal, the sample size, and a 1..5 histogram
// with zero-filled buckets.
func summarizeRatings(ratings []int) (average float64, total int, histogram map[int]int) {
	histogram = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	total = len(ratings)
	if total == 0 {
		return 0, 0, histogram
	}
	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= 1 && r <= 5 {
			histogram[r]++
		}
	}
	average = utils.Round1(float64(sum) / float64(total))
	return average, total, histogram
}

// approvedRatings fetches the ratings of all approved reviews for a product.
func approvedRatings(ctx context.Context, productID string) ([]int, error) {
	cur, err := db.ReviewsCollection.Find(ctx, bson.M{
		"product_id":  productID,
		"is_approved": true,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ratings := []int{}
	for cur.Next(ctx) {
		var rev models.Review
		if err := cur.Decode(&rev); err != nil {
			continue
		}
		ratings = append(ratings, rev.Rating)
	}
	return ratings, cur.Err()
}

// recomputeProductRating refreshes the product's denormalized rating fields
// from its approved reviews. Must run after every review mutation.
func recomputeProductRating(ctx context.Context, productID string) {
	ratings, err := approvedRatings(ctx, productID)
	if err != nil {
		log.Printf("recomputeProductRating: fetch failed for %s: %v", productID, err)
		return
	}
	average, total, _ := summarizeRatings(ratings)
	_, err = db.ProductCollection.UpdateOne(ctx, bson.M{"id": productID}, bson.M{
		"$set": bson.M{"average_rating": average, "total_reviews": total},
	})
	if err != nil {
		log.Printf("recomputeProductRating: update failed for %s: %v", productID, err)
	}
}

type reviewInput struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// POST /api/reviews
// One review per user per product; new reviews await moderation.
func CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input reviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"id": input.ProductID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"product_id": input.ProductID,
		"user_id":    userID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "You have already reviewed this product")
		return
	}

	userName := ""
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err == nil {
		userName = user.Name
	}

	now := time.Now().UTC()
	review := models.Review{
		ReviewID:   utils.GetUUID(),
		ProductID:  input.ProductID,
		UserID:     userID,
		UserName:   userName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}
	recomputeProductRating(ctx, input.ProductID)

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// GET /api/reviews
// Public callers see approved reviews only; admins may pass is_approved=false
// to inspect the moderation queue.
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := bson.M{}
	if v := q.Get("product_id"); v != "" {
		filter["product_id"] = v
	}
	if utils.IsAdmin(r) {
		if v := q.Get("is_approved"); v != "" {
			filter["is_approved"] = v == "true"
		}
	} else {
		filter["is_approved"] = true
	}

	skip, limit := utils.ParsePagination(r, 50, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := db.ReviewsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	defer cur.Close(ctx)

	reviewList := []models.Review{}
	if err := cur.All(ctx, &reviewList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviewList)
}

// GET /api/products/:productid/review-stats
func GetReviewStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	ratings, err := approvedRatings(ctx, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve review stats")
		return
	}
	average, total, histogram := summarizeRatings(ratings)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"product_id":          productID,
		"average_rating":      average,
		"total_reviews":       total,
		"rating_distribution": histogram,
	})
}

// GET /api/reviews/:reviewid
func GetReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	review, err := getReviewByID(r.Context(), ps.ByName("reviewid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}

type moderationInput struct {
	IsApproved *bool   `json:"is_approved"`
	Comment    *string `json:"comment"`
}

// PUT /api/reviews/:reviewid  (admin moderation)
func UpdateReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reviewID := ps.ByName("reviewid")

	review, err := getReviewByID(ctx, reviewID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	var input moderationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.IsApproved != nil {
		set["is_approved"] = *input.IsApproved
	}
	if input.Comment != nil {
		set["comment"] = *input.Comment
	}

	if _, err := db.ReviewsCollection.UpdateOne(ctx, bson.M{"id": reviewID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}
	recomputeProductRating(ctx, review.ProductID)

	updated, err := getReviewByID(ctx, reviewID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

type ownReviewInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// PUT /api/reviews/:reviewid/own
// Editing your own review sends it back through moderation. The lookup is
// filtered by owner, so someone else's review id reads as absent.
func UpdateOwnReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reviewID := ps.ByName("reviewid")
	userID := utils.GetUserIDFromRequest(r)

	var review models.Review
	if err := db.ReviewsCollection.FindOne(ctx, bson.M{"id": reviewID, "user_id": userID}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	var input ownReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	set := bson.M{
		"is_approved": false,
		"updated_at":  time.Now().UTC(),
	}
	if input.Rating != nil {
		set["rating"] = *input.Rating
	}
	if input.Comment != nil {
		set["comment"] = *input.Comment
	}

	if _, err := db.ReviewsCollection.UpdateOne(ctx, bson.M{"id": reviewID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}
	recomputeProductRating(ctx, review.ProductID)

	updated, err := getReviewByID(ctx, reviewID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/reviews/:reviewid  (owner or admin)
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reviewID := ps.ByName("reviewid")

	review, err := getReviewByID(ctx, reviewID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.UserID != utils.GetUserIDFromRequest(r) && !utils.IsAdmin(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this review")
		return
	}

	if _, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"id": reviewID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	recomputeProductRating(ctx, review.ProductID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Review deleted successfully"})
}

func getReviewByID(ctx context.Context, reviewID string) (models.Review, error) {
	var review models.Review
	err := db.ReviewsCollection.FindOne(ctx, bson.M{"id": reviewID}).Decode(&review)
	return review, err
}
