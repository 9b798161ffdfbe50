package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/razorpay"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService owns the order lifecycle. The gateway client is constructed
// once at startup and injected.
type OrderService struct {
	Gateway *razorpay.Client
}

func NewOrderService(gateway *razorpay.Client) *OrderService {
	return &OrderService{Gateway: gateway}
}

type orderCreateInput struct {
	Items           []models.OrderItem `json:"items"`
	ShippingAddress models.Address     `json:"shipping_address"`
}

// computeTotals derives subtotal/discount/total from the item snapshots.
// Per-item pricing is taken from the request verbatim; the totals are the
// only server-owned arithmetic.
func computeTotals(items []models.OrderItem) (subtotal, discount, total float64) {
	for _, item := range items {
		qty := float64(item.Quantity)
		subtotal += item.FinalPrice * qty
		discount += (item.Price - item.FinalPrice) * qty
	}
	subtotal = utils.Round2(subtotal)
	discount = utils.Round2(discount)
	total = subtotal
	return subtotal, discount, total
}

// POST /api/orders
func (s *OrderService) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input orderCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || len(input.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	subtotal, discount, total := computeTotals(input.Items)

	now := time.Now().UTC()
	order := models.Order{
		OrderID:         utils.GetUUID(),
		UserID:          userID,
		Items:           input.Items,
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           total,
		ShippingAddress: input.ShippingAddress,
		OrderStatus:     models.OrderPending,
		PaymentStatus:   models.PaymentPending,
		TrackingUpdates: []models.TrackingUpdate{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Printf("CreateOrder: insert failed for user %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GET /api/orders?status_filter=&skip=&limit=
// Admins see everything; customers are scoped to their own orders
// server-side, regardless of any client-supplied filter.
func (s *OrderService) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := bson.M{}
	if !utils.IsAdmin(r) {
		filter["user_id"] = utils.GetUserIDFromRequest(r)
	}
	if status := r.URL.Query().Get("status_filter"); status != "" {
		filter["order_status"] = status
	}

	skip, limit := utils.ParsePagination(r, 50, 100)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := db.OrdersCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("GetOrders: find failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GET /api/orders/:orderid  (owner or admin)
func (s *OrderService) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	order, err := getOrderByID(ctx, ps.ByName("orderid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	if !utils.IsAdmin(r) && order.UserID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// PUT /api/orders/:orderid  (admin)
func (s *OrderService) UpdateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("orderid")

	var patch models.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	set := bson.M{}
	if patch.OrderStatus != nil {
		set["order_status"] = *patch.OrderStatus
	}
	if patch.PaymentStatus != nil {
		set["payment_status"] = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		set["payment_method"] = *patch.PaymentMethod
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if _, err := db.OrdersCollection.UpdateOne(ctx, bson.M{"id": orderID}, bson.M{"$set": set}); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}

	order, err := getOrderByID(ctx, orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

type trackingInput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// POST /api/orders/:orderid/tracking  (admin)
// Appends to the log only; the canonical order_status is left untouched.
func (s *OrderService) AddTracking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("orderid")

	var input trackingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tracking data")
		return
	}

	if _, err := getOrderByID(ctx, orderID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	now := time.Now().UTC()
	entry := models.TrackingUpdate{Status: input.Status, Message: input.Message, Timestamp: now}

	_, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"id": orderID},
		bson.M{
			"$push": bson.M{"tracking_updates": entry},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add tracking update")
		return
	}

	order, err := getOrderByID(ctx, orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func getOrderByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"id": orderID}).Decode(&order)
	return order, err
}
