package models

import "time"

// Order lifecycle values. No transition graph is enforced beyond the
// payment-confirmation flip; admins may set any value.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// OrderItem is an immutable snapshot captured at order-creation time.
// It is never re-read from the live product.
type OrderItem struct {
	ProductID    string  `json:"product_id" bson:"product_id"`
	ProductName  string  `json:"product_name" bson:"product_name"`
	ProductImage string  `json:"product_image" bson:"product_image"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	Price        float64 `json:"price" bson:"price"`
	Discount     float64 `json:"discount" bson:"discount"`
	FinalPrice   float64 `json:"final_price" bson:"final_price"`
}

type TrackingUpdate struct {
	Status    string    `json:"status" bson:"status"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type Order struct {
	OrderID           string           `json:"id" bson:"id"`
	UserID            string           `json:"user_id" bson:"user_id"`
	Items             []OrderItem      `json:"items" bson:"items"`
	Subtotal          float64          `json:"subtotal" bson:"subtotal"`
	Discount          float64          `json:"discount" bson:"discount"`
	Total             float64          `json:"total" bson:"total"`
	ShippingAddress   Address          `json:"shipping_address" bson:"shipping_address"`
	OrderStatus       string           `json:"order_status" bson:"order_status"`
	PaymentStatus     string           `json:"payment_status" bson:"payment_status"`
	PaymentMethod     string           `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	RazorpayOrderID   string           `json:"razorpay_order_id,omitempty" bson:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string           `json:"razorpay_payment_id,omitempty" bson:"razorpay_payment_id,omitempty"`
	RazorpaySignature string           `json:"razorpay_signature,omitempty" bson:"razorpay_signature,omitempty"`
	TrackingUpdates   []TrackingUpdate `json:"tracking_updates" bson:"tracking_updates"`
	CreatedAt         time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" bson:"updated_at"`
}

// OrderUpdate is the admin patch; nil fields are untouched.
type OrderUpdate struct {
	OrderStatus   *string `json:"order_status"`
	PaymentStatus *string `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
}
