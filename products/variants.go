package products

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// variantSortKey extracts the leading number from a variant name such as
// "50 ML" or "100ml". Names without digits key to 0 and sort first.
func variantSortKey(name string) int {
	digits := strings.Builder{}
	for _, r := range name {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// findVariants returns the sibling products sharing the variant group,
// sorted by size ascending. Products outside a group have no variants.
func findVariants(ctx context.Context, product models.Product) ([]models.Product, error) {
	if product.VariantGroup == "" {
		return []models.Product{}, nil
	}

	cur, err := db.ProductCollection.Find(ctx, bson.M{
		"variant_group": product.VariantGroup,
		"id":            bson.M{"$ne": product.ProductID},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	variants := []models.Product{}
	if err := cur.All(ctx, &variants); err != nil {
		return nil, err
	}

	sort.SliceStable(variants, func(i, j int) bool {
		return variantSortKey(variants[i].VariantName) < variantSortKey(variants[j].VariantName)
	})
	return variants, nil
}

// GET /api/products/:productid/variants
func GetProductVariants(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	product, err := getProductByID(ctx, ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	variants, err := findVariants(ctx, product)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve variants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, variants)
}

// GET /api/products/:productid/related
func GetRelatedProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	product, err := getProductByID(ctx, ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if len(product.RelatedProducts) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}

	cur, err := db.ProductCollection.Find(ctx, bson.M{"id": bson.M{"$in": product.RelatedProducts}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve related products")
		return
	}
	defer cur.Close(ctx)

	related := []models.Product{}
	if err := cur.All(ctx, &related); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve related products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, related)
}

// GET /api/variant-groups  (admin)
func GetVariantGroups(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	raw, err := db.ProductCollection.Distinct(ctx, "variant_group", bson.M{"variant_group": bson.M{"$ne": ""}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve variant groups")
		return
	}

	groups := []string{}
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			groups = append(groups, s)
		}
	}
	sort.Strings(groups)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"variant_groups": groups})
}
