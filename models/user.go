package models

import "time"

type Address struct {
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Phone      string `json:"phone" bson:"phone"`
}

type User struct {
	UserID       string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"` // "customer" or "admin"
	PasswordHash string    `json:"-" bson:"password_hash"`
	Addresses    []Address `json:"addresses" bson:"addresses"`
	Wishlist     []string  `json:"wishlist" bson:"wishlist"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
