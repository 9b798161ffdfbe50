package banners

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

type bannerInput struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"image_url"`
	CtaText      string `json:"cta_text"`
	CtaLink      string `json:"cta_link"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// POST /api/banners  (admin)
func CreateBanner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input bannerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Title == "" || input.ImageURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid banner data")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	banner := models.Banner{
		BannerID:     utils.GetUUID(),
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		ImageURL:     input.ImageURL,
		CtaText:      input.CtaText,
		CtaLink:      input.CtaLink,
		DisplayOrder: input.DisplayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.BannersCollection.InsertOne(ctx, banner); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create banner")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, banner)
}

// GET /api/banners
func GetBanners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{"is_active": true}
	if utils.IsAdmin(r) && r.URL.Query().Get("include_inactive") == "true" {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := db.BannersCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve banners")
		return
	}
	defer cur.Close(ctx)

	bannerList := []models.Banner{}
	if err := cur.All(ctx, &bannerList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve banners")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bannerList)
}

// PUT /api/banners/:bannerid  (admin)
func UpdateBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	bannerID := ps.ByName("bannerid")

	if _, err := getBannerByID(ctx, bannerID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Banner not found")
		return
	}

	var patch models.BannerUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Subtitle != nil {
		set["subtitle"] = *patch.Subtitle
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.CtaText != nil {
		set["cta_text"] = *patch.CtaText
	}
	if patch.CtaLink != nil {
		set["cta_link"] = *patch.CtaLink
	}
	if patch.DisplayOrder != nil {
		set["display_order"] = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}

	if _, err := db.BannersCollection.UpdateOne(ctx, bson.M{"id": bannerID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update banner")
		return
	}

	updated, err := getBannerByID(ctx, bannerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Banner not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/banners/:bannerid  (admin)
func DeleteBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	bannerID := ps.ByName("bannerid")

	res, err := db.BannersCollection.DeleteOne(ctx, bson.M{"id": bannerID})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Banner not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Banner deleted successfully"})
}

func getBannerByID(ctx context.Context, bannerID string) (models.Banner, error) {
	var banner models.Banner
	err := db.BannersCollection.FindOne(ctx, bson.M{"id": bannerID}).Decode(&banner)
	return banner, err
}
