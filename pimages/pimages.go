package pimages

import (
	"context"
	"encoding/json"
	"net/http"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type imageInput struct {
	ProductID string `json:"product_id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// demoteOthers clears is_primary on every other image of the product so at
// most one image is primary at a time.
func demoteOthers(ctx context.Context, productID, exceptID string) error {
	_, err := db.ProductImagesCollection.UpdateMany(ctx, bson.M{
		"product_id": productID,
		"id":         bson.M{"$ne": exceptID},
	}, bson.M{"$set": bson.M{"is_primary": false}})
	return err
}

// POST /api/admin/product-images  (admin)
func CreateProductImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input imageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" || input.ImageURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image data")
		return
	}

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"id": input.ProductID})
	if err != nil || count == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	image := models.ProductImage{
		ImageID:   utils.GetUUID(),
		ProductID: input.ProductID,
		ImageURL:  input.ImageURL,
		IsPrimary: input.IsPrimary,
		SortOrder: input.SortOrder,
	}

	if _, err := db.ProductImagesCollection.InsertOne(ctx, image); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create image")
		return
	}
	if image.IsPrimary {
		if err := demoteOthers(ctx, image.ProductID, image.ImageID); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create image")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, image)
}

// GET /api/products/:productid/images
func GetProductImages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cur, err := db.ProductImagesCollection.Find(ctx, bson.M{"product_id": ps.ByName("productid")}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve images")
		return
	}
	defer cur.Close(ctx)

	imageList := []models.ProductImage{}
	if err := cur.All(ctx, &imageList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve images")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, imageList)
}

// PUT /api/admin/product-images/:imageid  (admin)
func UpdateProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	imageID := ps.ByName("imageid")

	existing, err := getImageByID(ctx, imageID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}

	var patch models.ProductImageUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.IsPrimary != nil {
		set["is_primary"] = *patch.IsPrimary
	}
	if patch.SortOrder != nil {
		set["sort_order"] = *patch.SortOrder
	}
	if len(set) > 0 {
		if _, err := db.ProductImagesCollection.UpdateOne(ctx, bson.M{"id": imageID}, bson.M{"$set": set}); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update image")
			return
		}
		if patch.IsPrimary != nil && *patch.IsPrimary {
			if err := demoteOthers(ctx, existing.ProductID, imageID); err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update image")
				return
			}
		}
	}

	updated, err := getImageByID(ctx, imageID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/admin/product-images/:imageid  (admin)
func DeleteProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	res, err := db.ProductImagesCollection.DeleteOne(ctx, bson.M{"id": ps.ByName("imageid")})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Image deleted successfully"})
}

func getImageByID(ctx context.Context, imageID string) (models.ProductImage, error) {
	var image models.ProductImage
	err := db.ProductImagesCollection.FindOne(ctx, bson.M{"id": imageID}).Decode(&image)
	return image, err
}
