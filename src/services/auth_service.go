package services

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("an account with this email already exists")

// RegisterUser creates a portal account. Privacy policy acceptance is
// validated by the controller before we get here; the acceptance timestamp
// and signup IP are recorded on the profile.
func RegisterUser(ctx context.Context, email, password, fullName, ip string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:                    primitive.NewObjectID(),
		Email:                 email,
		Password:              string(hashed),
		FullName:              fullName,
		Role:                  "user",
		WalletBalance:         0,
		PrivacyPolicyAccepted: true,
		AcceptedAt:            &now,
		IPAddress:             ip,
		CreatedAt:             now,
	}

	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks credentials and returns the account.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid email or password")
	}

	return &dbUser, nil
}

// GetUserByID returns one account.
func GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CountUsers returns the registered account total for the dashboard stats.
func CountUsers(ctx context.Context) (int64, error) {
	return DB.UserCollection.CountDocuments(ctx, bson.M{})
}
