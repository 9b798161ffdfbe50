package models

import "time"

type Product struct {
	ProductID       string                 `json:"id" bson:"id"`
	Name            string                 `json:"name" bson:"name"`
	Slug            string                 `json:"slug" bson:"slug"`
	Brand           string                 `json:"brand" bson:"brand"`
	CategoryID      string                 `json:"category_id" bson:"category_id"`
	Price           float64                `json:"price" bson:"price"`
	Discount        float64                `json:"discount" bson:"discount"`
	FinalPrice      float64                `json:"final_price" bson:"final_price"`
	Images          []string               `json:"images" bson:"images"`
	Stock           int                    `json:"stock" bson:"stock"`
	Description     string                 `json:"description" bson:"description"`
	FragranceNotes  string                 `json:"fragrance_notes,omitempty" bson:"fragrance_notes,omitempty"`
	VariantGroup    string                 `json:"variant_group,omitempty" bson:"variant_group,omitempty"`
	VariantName     string                 `json:"variant_name,omitempty" bson:"variant_name,omitempty"`
	Specifications  map[string]interface{} `json:"specifications,omitempty" bson:"specifications,omitempty"`
	IsFeatured      bool                   `json:"is_featured" bson:"is_featured"`
	IsBestSelling   bool                   `json:"is_best_selling" bson:"is_best_selling"`
	IsNewArrival    bool                   `json:"is_new_arrival" bson:"is_new_arrival"`
	RelatedProducts []string               `json:"related_products" bson:"related_products"`
	AverageRating   float64                `json:"average_rating" bson:"average_rating"`
	TotalReviews    int                    `json:"total_reviews" bson:"total_reviews"`
	CreatedAt       time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at" bson:"updated_at"`
}

// ProductUpdate carries a partial patch; nil fields are left untouched.
type ProductUpdate struct {
	Name            *string                `json:"name"`
	Slug            *string                `json:"slug"`
	Brand           *string                `json:"brand"`
	CategoryID      *string                `json:"category_id"`
	Price           *float64               `json:"price"`
	Discount        *float64               `json:"discount"`
	Images          []string               `json:"images"`
	Stock           *int                   `json:"stock"`
	Description     *string                `json:"description"`
	FragranceNotes  *string                `json:"fragrance_notes"`
	VariantGroup    *string                `json:"variant_group"`
	VariantName     *string                `json:"variant_name"`
	Specifications  map[string]interface{} `json:"specifications"`
	IsFeatured      *bool                  `json:"is_featured"`
	IsBestSelling   *bool                  `json:"is_best_selling"`
	IsNewArrival    *bool                  `json:"is_new_arrival"`
	RelatedProducts []string               `json:"related_products"`
}
