package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mfrida/db"
	"mfrida/middleware"
	"mfrida/models"
	"mfrida/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type signupInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/signup
func Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input signupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" || input.Name == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Role == "" {
		input.Role = "customer"
	}
	if input.Role != "customer" && input.Role != "admin" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:       utils.GetUUID(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: string(hashedPassword),
		Addresses:    []models.Address{},
		Wishlist:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := middleware.CreateAccessToken(user.UserID, user.Email, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  user,
	})
}

// POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.CreateAccessToken(user.UserID, user.Email, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := getUserByID(r.Context(), utils.GetUserIDFromRequest(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// POST /api/auth/addresses
func AddAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid address data")
		return
	}

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{
			"$push": bson.M{"addresses": address},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add address")
		return
	}

	user, err := getUserByID(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func getUserByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"id": userID}).Decode(&user)
	return user, err
}
