package wishlist

import (
	"context"
	"net/http"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func getWishlist(ctx context.Context, userID string) ([]string, error) {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
		return nil, err
	}
	if user.Wishlist == nil {
		return []string{}, nil
	}
	return user.Wishlist, nil
}

// GET /api/wishlist
// Returns the caller's saved products expanded to full documents. Entries
// whose product has since been deleted are silently dropped.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	ids, err := getWishlist(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if len(ids) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}

	cur, err := db.ProductCollection.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve wishlist")
		return
	}
	defer cur.Close(ctx)

	productList := []models.Product{}
	if err := cur.All(ctx, &productList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve wishlist")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, productList)
}

// POST /api/wishlist/:productid
func AddToWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("productid")

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"id": productID})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	// $addToSet keeps the wishlist duplicate-free without a read first.
	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$addToSet": bson.M{"wishlist": productID},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}
	if res.ModifiedCount == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product already in wishlist"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product added to wishlist"})
}

// DELETE /api/wishlist/:productid
func RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("productid")

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$pull": bson.M{"wishlist": productID},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}
	if res.ModifiedCount == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product not in wishlist"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product removed from wishlist"})
}

// GET /api/wishlist/:productid/check
func CheckWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	productID := ps.ByName("productid")

	ids, err := getWishlist(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	found := false
	for _, id := range ids {
		if id == productID {
			found = true
			break
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"in_wishlist": found})
}
