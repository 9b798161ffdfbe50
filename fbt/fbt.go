package fbt

import (
	"encoding/json"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fbtInput struct {
	ProductID         string   `json:"product_id"`
	RelatedProductIDs []string `json:"related_product_ids"`
}

// PUT /api/admin/frequently-bought  (admin)
// One association document per product; writing again replaces the list.
func SetFrequentlyBought(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input fbtInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if input.RelatedProductIDs == nil {
		input.RelatedProductIDs = []string{}
	}

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"id": input.ProductID})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"product_id":          input.ProductID,
			"related_product_ids": input.RelatedProductIDs,
			"updated_at":          now,
		},
		"$setOnInsert": bson.M{
			"id":         utils.GetUUID(),
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := db.FrequentlyBoughtCollection.UpdateOne(ctx, bson.M{"product_id": input.ProductID}, update, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save association")
		return
	}

	var doc models.FrequentlyBought
	if err := db.FrequentlyBoughtCollection.FindOne(ctx, bson.M{"product_id": input.ProductID}).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save association")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, doc)
}

// GET /api/products/:productid/frequently-bought
// Returns the associated products expanded. No association means an empty
// list, not a 404.
func GetFrequentlyBought(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	var doc models.FrequentlyBought
	err := db.FrequentlyBoughtCollection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&doc)
	if err == mongo.ErrNoDocuments || (err == nil && len(doc.RelatedProductIDs) == 0) {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve association")
		return
	}

	cur, err := db.ProductCollection.Find(ctx, bson.M{"id": bson.M{"$in": doc.RelatedProductIDs}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve association")
		return
	}
	defer cur.Close(ctx)

	productList := []models.Product{}
	if err := cur.All(ctx, &productList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve association")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, productList)
}

// DELETE /api/admin/frequently-bought/:productid  (admin)
func DeleteFrequentlyBought(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	res, err := db.FrequentlyBoughtCollection.DeleteOne(ctx, bson.M{"product_id": ps.ByName("productid")})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Association not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Association deleted successfully"})
}
