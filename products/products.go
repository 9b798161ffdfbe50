package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/rdx"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slugCachePrefix = "product:slug:"
const slugCacheTTL = 10 * time.Minute

// finalPrice derives the sale price from list price and discount percent.
// Always computed server-side, never trusted from input.
func finalPrice(price, discount float64) float64 {
	return utils.Round2(price * (1 - discount/100))
}

var sortWhitelist = map[string]bool{
	"name":           true,
	"price":          true,
	"final_price":    true,
	"created_at":     true,
	"average_rating": true,
}

// buildListFilter assembles the conjunctive query from optional params.
// Free-text search is OR'd across name/brand/description.
func buildListFilter(q url.Values) bson.M {
	filter := bson.M{}

	if v := q.Get("category_id"); v != "" {
		filter["category_id"] = v
	}
	for _, flag := range []string{"is_featured", "is_best_selling", "is_new_arrival"} {
		if v := q.Get(flag); v != "" {
			filter[flag] = v == "true"
		}
	}

	priceRange := bson.M{}
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			priceRange["$gte"] = f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			priceRange["$lte"] = f
		}
	}
	if len(priceRange) > 0 {
		filter["final_price"] = priceRange
	}

	if search := q.Get("search"); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"brand": regex},
			bson.M{"description": regex},
		}
	}

	return filter
}

type productCreateInput struct {
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Brand           string                 `json:"brand"`
	CategoryID      string                 `json:"category_id"`
	Price           float64                `json:"price"`
	Discount        float64                `json:"discount"`
	Images          []string               `json:"images"`
	Stock           int                    `json:"stock"`
	Description     string                 `json:"description"`
	FragranceNotes  string                 `json:"fragrance_notes"`
	VariantGroup    string                 `json:"variant_group"`
	VariantName     string                 `json:"variant_name"`
	Specifications  map[string]interface{} `json:"specifications"`
	IsFeatured      bool                   `json:"is_featured"`
	IsBestSelling   bool                   `json:"is_best_selling"`
	IsNewArrival    bool                   `json:"is_new_arrival"`
	RelatedProducts []string               `json:"related_products"`
}

// POST /api/products  (admin)
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input productCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" || input.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	if input.Images == nil {
		input.Images = []string{}
	}
	if input.RelatedProducts == nil {
		input.RelatedProducts = []string{}
	}

	now := time.Now().UTC()
	product := models.Product{
		ProductID:       utils.GetUUID(),
		Name:            input.Name,
		Slug:            input.Slug,
		Brand:           input.Brand,
		CategoryID:      input.CategoryID,
		Price:           input.Price,
		Discount:        input.Discount,
		FinalPrice:      finalPrice(input.Price, input.Discount),
		Images:          input.Images,
		Stock:           input.Stock,
		Description:     input.Description,
		FragranceNotes:  input.FragranceNotes,
		VariantGroup:    input.VariantGroup,
		VariantName:     input.VariantName,
		Specifications:  input.Specifications,
		IsFeatured:      input.IsFeatured,
		IsBestSelling:   input.IsBestSelling,
		IsNewArrival:    input.IsNewArrival,
		RelatedProducts: input.RelatedProducts,
		AverageRating:   0,
		TotalReviews:    0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Printf("CreateProduct: insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// GET /api/products
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	sortBy := q.Get("sort_by")
	if !sortWhitelist[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := -1
	if q.Get("sort_order") == "1" {
		sortOrder = 1
	}

	skip, limit := utils.ParsePagination(r, 50, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := db.ProductCollection.Find(ctx, buildListFilter(q), opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	defer cur.Close(ctx)

	productList := []models.Product{}
	if err := cur.All(ctx, &productList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, productList)
}

// GET /api/products/:productid
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, err := getProductByID(r.Context(), ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GET /api/product/slug/:slug
// Returns the product with its variants embedded. Cached in redis by slug;
// cache faults fall through to Mongo.
func GetProductBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	slug := ps.ByName("slug")

	if cached, err := rdx.RdxGet(slugCachePrefix + slug); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	variants, err := findVariants(ctx, product)
	if err != nil {
		log.Printf("GetProductBySlug: variant lookup failed for %s: %v", slug, err)
		variants = []models.Product{}
	}

	response := utils.M{}
	raw, _ := json.Marshal(product)
	json.Unmarshal(raw, &response)
	response["variants"] = variants

	if payload, err := json.Marshal(response); err == nil {
		if err := rdx.SetWithExpiry(slugCachePrefix+slug, string(payload), slugCacheTTL); err != nil {
			log.Printf("GetProductBySlug: cache write failed for %s: %v", slug, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PUT /api/products/:productid  (admin)
// A patch touching price or discount recomputes final_price from the merged
// values with the same rounding rule as creation.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	var patch models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	existing, err := getProductByID(ctx, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	set := buildProductPatch(existing, patch)
	if len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if _, err := db.ProductCollection.UpdateOne(ctx, bson.M{"id": productID}, bson.M{"$set": set}); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
			return
		}
		invalidateSlugCache(existing.Slug)
		if patch.Slug != nil && *patch.Slug != existing.Slug {
			invalidateSlugCache(*patch.Slug)
		}
	}

	updated, err := getProductByID(ctx, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// buildProductPatch turns non-nil patch fields into a $set document,
// recomputing final_price when price or discount moves.
func buildProductPatch(existing models.Product, patch models.ProductUpdate) bson.M {
	set := bson.M{}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Slug != nil {
		set["slug"] = *patch.Slug
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.CategoryID != nil {
		set["category_id"] = *patch.CategoryID
	}
	if patch.Images != nil {
		set["images"] = patch.Images
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.FragranceNotes != nil {
		set["fragrance_notes"] = *patch.FragranceNotes
	}
	if patch.VariantGroup != nil {
		set["variant_group"] = *patch.VariantGroup
	}
	if patch.VariantName != nil {
		set["variant_name"] = *patch.VariantName
	}
	if patch.Specifications != nil {
		set["specifications"] = patch.Specifications
	}
	if patch.IsFeatured != nil {
		set["is_featured"] = *patch.IsFeatured
	}
	if patch.IsBestSelling != nil {
		set["is_best_selling"] = *patch.IsBestSelling
	}
	if patch.IsNewArrival != nil {
		set["is_new_arrival"] = *patch.IsNewArrival
	}
	if patch.RelatedProducts != nil {
		set["related_products"] = patch.RelatedProducts
	}

	if patch.Price != nil || patch.Discount != nil {
		price := existing.Price
		discount := existing.Discount
		if patch.Price != nil {
			price = *patch.Price
			set["price"] = price
		}
		if patch.Discount != nil {
			discount = *patch.Discount
			set["discount"] = discount
		}
		set["final_price"] = finalPrice(price, discount)
	}

	return set
}

// DELETE /api/products/:productid  (admin)
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	product, err := getProductByID(ctx, productID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"id": productID})
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	invalidateSlugCache(product.Slug)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product deleted successfully"})
}

func invalidateSlugCache(slug string) {
	if _, err := rdx.RdxDel(slugCachePrefix + slug); err != nil {
		log.Printf("Cache deletion failed for slug %s: %v", slug, err)
	}
}

func getProductByID(ctx context.Context, productID string) (models.Product, error) {
	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"id": productID}).Decode(&product)
	return product, err
}
