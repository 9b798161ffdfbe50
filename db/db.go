package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection             *mongo.Collection
	ProductCollection          *mongo.Collection
	OrdersCollection           *mongo.Collection
	ReviewsCollection          *mongo.Collection
	CategoriesCollection       *mongo.Collection
	BannersCollection          *mongo.Collection
	NavigationCollection       *mongo.Collection
	HomepageCollection         *mongo.Collection
	ProductVariantsCollection  *mongo.Collection
	ProductImagesCollection    *mongo.Collection
	FrequentlyBoughtCollection *mongo.Collection
	Client                     *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "mfridadb"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database(dbName).Collection("users")
	ProductCollection = Client.Database(dbName).Collection("products")
	OrdersCollection = Client.Database(dbName).Collection("orders")
	ReviewsCollection = Client.Database(dbName).Collection("reviews")
	CategoriesCollection = Client.Database(dbName).Collection("categories")
	BannersCollection = Client.Database(dbName).Collection("banners")
	NavigationCollection = Client.Database(dbName).Collection("navigation_items")
	HomepageCollection = Client.Database(dbName).Collection("homepage_config")
	ProductVariantsCollection = Client.Database(dbName).Collection("product_variants")
	ProductImagesCollection = Client.Database(dbName).Collection("product_images")
	FrequentlyBoughtCollection = Client.Database(dbName).Collection("frequently_bought_together")
}
