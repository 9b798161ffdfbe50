package models

import "time"

type Review struct {
	ReviewID   string    `json:"id" bson:"id"`
	ProductID  string    `json:"product_id" bson:"product_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	UserName   string    `json:"user_name" bson:"user_name"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment" bson:"comment"`
	IsApproved bool      `json:"is_approved" bson:"is_approved"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
