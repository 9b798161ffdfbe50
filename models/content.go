package models

import "time"

type Category struct {
	CategoryID   string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Slug         string    `json:"slug" bson:"slug"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type CategoryUpdate struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

type Banner struct {
	BannerID     string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Subtitle     string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ImageURL     string    `json:"image_url" bson:"image_url"`
	CtaText      string    `json:"cta_text,omitempty" bson:"cta_text,omitempty"`
	CtaLink      string    `json:"cta_link,omitempty" bson:"cta_link,omitempty"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type BannerUpdate struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	ImageURL     *string `json:"image_url"`
	CtaText      *string `json:"cta_text"`
	CtaLink      *string `json:"cta_link"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type NavigationItem struct {
	NavID        string    `json:"id" bson:"id"`
	Label        string    `json:"label" bson:"label"`
	Link         string    `json:"link" bson:"link"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type NavigationItemUpdate struct {
	Label        *string `json:"label"`
	Link         *string `json:"link"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type HeroBanner struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	ImageURL string `json:"image_url" bson:"image_url"`
	CtaText  string `json:"cta_text" bson:"cta_text"`
	CtaLink  string `json:"cta_link" bson:"cta_link"`
}

type FeaturedSection struct {
	Title      string   `json:"title" bson:"title"`
	Subtitle   string   `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ProductIDs []string `json:"product_ids" bson:"product_ids"`
}

// HomepageConfig is a singleton document keyed by id "homepage_config".
type HomepageConfig struct {
	ConfigID         string            `json:"id" bson:"id"`
	HeroBanners      []HeroBanner      `json:"hero_banners" bson:"hero_banners"`
	FeaturedSections []FeaturedSection `json:"featured_sections" bson:"featured_sections"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}

type FrequentlyBought struct {
	ID                string    `json:"id" bson:"id"`
	ProductID         string    `json:"product_id" bson:"product_id"`
	RelatedProductIDs []string  `json:"related_product_ids" bson:"related_product_ids"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

type ProductVariant struct {
	VariantID       string  `json:"id" bson:"id"`
	ParentProductID string  `json:"parent_product_id" bson:"parent_product_id"`
	Name            string  `json:"name" bson:"name"`
	Price           float64 `json:"price" bson:"price"`
	Stock           int     `json:"stock" bson:"stock"`
}

type ProductImage struct {
	ImageID   string `json:"id" bson:"id"`
	ProductID string `json:"product_id" bson:"product_id"`
	ImageURL  string `json:"image_url" bson:"image_url"`
	IsPrimary bool   `json:"is_primary" bson:"is_primary"`
	SortOrder int    `json:"sort_order" bson:"sort_order"`
}

type ProductImageUpdate struct {
	ImageURL  *string `json:"image_url"`
	IsPrimary *bool   `json:"is_primary"`
	SortOrder *int    `json:"sort_order"`
}
