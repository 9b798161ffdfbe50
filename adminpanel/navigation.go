package adminpanel

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

type navigationInput struct {
	Label        string `json:"label"`
	Link         string `json:"link"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// POST /api/admin/navigation  (admin)
func CreateNavigationItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input navigationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Label == "" || input.Link == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid navigation data")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	item := models.NavigationItem{
		NavID:        utils.GetUUID(),
		Label:        input.Label,
		Link:         input.Link,
		DisplayOrder: input.DisplayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.NavigationCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create navigation item")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GET /api/navigation
func GetNavigation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{"is_active": true}
	if utils.IsAdmin(r) && r.URL.Query().Get("include_inactive") == "true" {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := db.NavigationCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve navigation")
		return
	}
	defer cur.Close(ctx)

	items := []models.NavigationItem{}
	if err := cur.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve navigation")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// PUT /api/admin/navigation/:navid  (admin)
func UpdateNavigationItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	navID := ps.ByName("navid")

	if _, err := getNavigationItemByID(ctx, navID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Navigation item not found")
		return
	}

	var patch models.NavigationItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Label != nil {
		set["label"] = *patch.Label
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}
	if patch.DisplayOrder != nil {
		set["display_order"] = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}

	if _, err := db.NavigationCollection.UpdateOne(ctx, bson.M{"id": navID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update navigation item")
		return
	}

	updated, err := getNavigationItemByID(ctx, navID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Navigation item not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/admin/navigation/:navid  (admin)
func DeleteNavigationItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	navID := ps.ByName("navid")

	res, err := db.NavigationCollection.DeleteOne(ctx, bson.M{"id": navID})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Navigation item not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Navigation item deleted successfully"})
}

func getNavigationItemByID(ctx context.Context, navID string) (models.NavigationItem, error) {
	var item models.NavigationItem
	err := db.NavigationCollection.FindOne(ctx, bson.M{"id": navID}).Decode(&item)
	return item, err
}
