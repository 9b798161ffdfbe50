package orders

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/payments/create-order?order_id=
func (s *OrderService) CreatePaymentOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "order_id is required")
		return
	}

	order, err := getOrderByID(ctx, orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	gatewayOrder, err := s.Gateway.CreateOrder(ctx, order.Total, "INR")
	if err != nil {
		log.Printf("CreatePaymentOrder: gateway error for order %s: %v", orderID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"razorpay_order_id": gatewayOrder.ID,
		"amount":            gatewayOrder.Amount,
		"currency":          gatewayOrder.Currency,
		"order_id":          orderID,
	})
}

type paymentVerification struct {
	OrderID           string `json:"order_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PaymentMethod     string `json:"payment_method"`
}

// POST /api/payments/verify
// Confirms the order in a single atomic update: the status flip and the
// first tracking entry land together. Re-verifying an already completed
// order short-circuits so the log never double-appends.
func (s *OrderService) VerifyPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var v paymentVerification
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil || v.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid verification data")
		return
	}

	order, err := getOrderByID(ctx, v.OrderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.UserID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	if !s.Gateway.VerifySignature(v.RazorpayOrderID, v.RazorpayPaymentID, v.RazorpaySignature) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	if order.PaymentStatus == models.PaymentCompleted {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Payment verified successfully",
			"success": true,
		})
		return
	}

	now := time.Now().UTC()
	set := bson.M{
		"razorpay_order_id":   v.RazorpayOrderID,
		"razorpay_payment_id": v.RazorpayPaymentID,
		"razorpay_signature":  v.RazorpaySignature,
		"payment_status":      models.PaymentCompleted,
		"order_status":        models.OrderConfirmed,
		"updated_at":          now,
	}
	if v.PaymentMethod != "" {
		set["payment_method"] = v.PaymentMethod
	}

	entry := models.TrackingUpdate{
		Status:    models.OrderConfirmed,
		Message:   "Order confirmed and payment received",
		Timestamp: now,
	}

	_, err = db.OrdersCollection.UpdateOne(ctx,
		bson.M{"id": v.OrderID},
		bson.M{
			"$set":  set,
			"$push": bson.M{"tracking_updates": entry},
		},
	)
	if err != nil {
		log.Printf("VerifyPayment: confirm failed for order %s: %v", v.OrderID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm payment")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Payment verified successfully",
		"success": true,
	})
}
