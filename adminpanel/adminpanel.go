package adminpanel

import (
	"net/http"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/admin/dashboard
// Aggregate counts and revenue for the storefront overview. Revenue only
// counts orders whose payment completed.
func GetDashboardStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	customerCount, err := db.UserCollection.CountDocuments(ctx, bson.M{"role": "customer"})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	productCount, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	orderCount, err := db.OrdersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	pendingOrders, err := db.OrdersCollection.CountDocuments(ctx, bson.M{"order_status": models.OrderPending})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	pendingReviews, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{"is_approved": false})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	pipeline := []bson.M{
		{"$match": bson.M{"payment_status": models.PaymentCompleted}},
		{"$group": bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total"}}},
	}
	cur, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	defer cur.Close(ctx)

	totalRevenue := 0.0
	var agg []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &agg); err == nil && len(agg) > 0 {
		totalRevenue = utils.Round2(agg[0].Revenue)
	}

	recentOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(10)
	recentCur, err := db.OrdersCollection.Find(ctx, bson.M{}, recentOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	defer recentCur.Close(ctx)
	recentOrders := []models.Order{}
	if err := recentCur.All(ctx, &recentOrders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	lowStockCur, err := db.ProductCollection.Find(ctx, bson.M{"stock": bson.M{"$lt": 10}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	defer lowStockCur.Close(ctx)
	lowStock := []models.Product{}
	if err := lowStockCur.All(ctx, &lowStock); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total_customers":    customerCount,
		"total_products":     productCount,
		"total_orders":       orderCount,
		"pending_orders":     pendingOrders,
		"pending_reviews":    pendingReviews,
		"total_revenue":      totalRevenue,
		"recent_orders":      recentOrders,
		"low_stock_products": lowStock,
	})
}

// GET /api/admin/users
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	skip, limit := utils.ParsePagination(r, 50, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := db.UserCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	defer cur.Close(ctx)

	userList := []models.User{}
	if err := cur.All(ctx, &userList); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, userList)
}
