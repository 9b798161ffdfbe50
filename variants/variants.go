package variants

import (
	"context"
	"encoding/json"
	"net/http"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type variantInput struct {
	ParentProductID string  `json:"parent_product_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
}

// POST /api/admin/variants  (admin)
func CreateVariant(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input variantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ParentProductID == "" || input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid variant data")
		return
	}

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"id": input.ParentProductID})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	variant := models.ProductVariant{
		VariantID:       utils.GetUUID(),
		ParentProductID: input.ParentProductID,
		Name:            input.Name,
		Price:           input.Price,
		Stock:           input.Stock,
	}

	if _, err := db.ProductVariantsCollection.InsertOne(ctx, variant); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create variant")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, variant)
}

// GET /api/products/:productid/variant-options
func GetVariantsForProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	cur, err := db.ProductVariantsCollection.Find(ctx, bson.M{"parent_product_id": ps.ByName("productid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve variants")
		return
	}
	defer cur.Close(ctx)

	variantList := []models.ProductVariant{}
	if err := cur.All(ctx, &variantList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve variants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, variantList)
}

// PUT /api/admin/variants/:variantid  (admin)
func UpdateVariant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	variantID := ps.ByName("variantid")

	if _, err := getVariantByID(ctx, variantID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Variant not found")
		return
	}

	var patch struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price"`
		Stock *int     `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if len(set) > 0 {
		if _, err := db.ProductVariantsCollection.UpdateOne(ctx, bson.M{"id": variantID}, bson.M{"$set": set}); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update variant")
			return
		}
	}

	updated, err := getVariantByID(ctx, variantID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Variant not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/admin/variants/:variantid  (admin)
func DeleteVariant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	res, err := db.ProductVariantsCollection.DeleteOne(ctx, bson.M{"id": ps.ByName("variantid")})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Variant not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Variant deleted successfully"})
}

func getVariantByID(ctx context.Context, variantID string) (models.ProductVariant, error) {
	var variant models.ProductVariant
	err := db.ProductVariantsCollection.FindOne(ctx, bson.M{"id": variantID}).Decode(&variant)
	return variant, err
}
