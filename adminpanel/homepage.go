package adminpanel

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

const homepageConfigID = "homepage_config"

// GET /api/homepage
// Reading the config creates an empty one if it does not exist yet, so the
// storefront always gets a well formed document.
func GetHomepage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var config models.HomepageConfig
	err := db.HomepageCollection.FindOne(ctx, bson.M{"id": homepageConfigID}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		config = models.HomepageConfig{
			ConfigID:         homepageConfigID,
			HeroBanners:      []models.HeroBanner{},
			FeaturedSections: []models.FeaturedSection{},
			UpdatedAt:        time.Now().UTC(),
		}
		if _, err := db.HomepageCollection.InsertOne(ctx, config); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load homepage config")
			return
		}
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load homepage config")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, config)
}

type homepageInput struct {
	HeroBanners      []models.HeroBanner      `json:"hero_banners"`
	FeaturedSections []models.FeaturedSection `json:"featured_sections"`
}

// PUT /api/admin/homepage  (admin)
func UpdateHomepage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input homepageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid homepage data")
		return
	}
	if input.HeroBanners == nil {
		input.HeroBanners = []models.HeroBanner{}
	}
	if input.FeaturedSections == nil {
		input.FeaturedSections = []models.FeaturedSection{}
	}

	config := models.HomepageConfig{
		ConfigID:         homepageConfigID,
		HeroBanners:      input.HeroBanners,
		FeaturedSections: input.FeaturedSections,
		UpdatedAt:        time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := db.HomepageCollection.ReplaceOne(ctx, bson.M{"id": homepageConfigID}, config, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update homepage config")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, config)
}
