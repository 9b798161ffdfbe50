package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryInput struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// POST /api/categories  (admin)
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" || input.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category data")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	category := models.Category{
		CategoryID:   utils.GetUUID(),
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		IsActive:     active,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.CategoriesCollection.InsertOne(ctx, category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, category)
}

// GET /api/categories
// Public listing returns active categories ordered for display; admins may
// pass include_inactive=true.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{"is_active": true}
	if utils.IsAdmin(r) && r.URL.Query().Get("include_inactive") == "true" {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := db.CategoriesCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	defer cur.Close(ctx)

	categoryList := []models.Category{}
	if err := cur.All(ctx, &categoryList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categoryList)
}

// GET /api/categories/:categoryid
func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	category, err := getCategoryByID(r.Context(), ps.ByName("categoryid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, category)
}

// PUT /api/categories/:categoryid  (admin)
func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("categoryid")

	if _, err := getCategoryByID(ctx, categoryID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	var patch models.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Slug != nil {
		set["slug"] = *patch.Slug
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if patch.DisplayOrder != nil {
		set["display_order"] = *patch.DisplayOrder
	}

	if _, err := db.CategoriesCollection.UpdateOne(ctx, bson.M{"id": categoryID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	updated, err := getCategoryByID(ctx, categoryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/categories/:categoryid  (admin)
// Deletion is refused while products still reference the category.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("categoryid")

	if _, err := getCategoryByID(ctx, categoryID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot delete category with existing products")
		return
	}

	if _, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"id": categoryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Category deleted successfully"})
}

func getCategoryByID(ctx context.Context, categoryID string) (models.Category, error) {
	var category models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"id": categoryID}).Decode(&category)
	return category, err
}
