package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Plan is a fixed top-up offering paid through a hosted checkout link. The
// gateway redirects back to the wallet callback page, which calls TopUp.
type Plan struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	PaymentLink string  `json:"paymentLink"`
}

var Plans = []Plan{
	{Name: "Go", Amount: 100, PaymentLink: "https://rzp.io/rzp/Kkl6l0Dh"},
	{Name: "Pro", Amount: 300, PaymentLink: "https://rzp.io/rzp/YndA3X1w"},
	{Name: "Plus", Amount: 600, PaymentLink: "https://rzp.io/rzp/8Jjspdx"},
}

var ErrInvalidPlan = errors.New("invalid plan selected")
var ErrAlreadyProcessed = errors.New("payment reference already processed")
var ErrTooManyTopUps = errors.New("too many top-ups in a short time")

// PlanByName resolves a plan by its name.
func PlanByName(name string) (*Plan, error) {
	for i := range Plans {
		if Plans[i].Name == name {
			return &Plans[i], nil
		}
	}
	return nil, ErrInvalidPlan
}

// TopUpResult mirrors the credit_wallet_topup reply consumed by the wallet
// callback page.
type TopUpResult struct {
	Success    bool    `json:"success"`
	NewBalance float64 `json:"new_balance"`
	Amount     float64 `json:"amount"`
	Error      string  `json:"error,omitempty"`
}

// topUpWindow limits how many credits a user may claim in a short period.
const topUpWindow = 10 * time.Minute
const topUpMaxPerWindow = 3

func checkTopUpRate(userID string) error {
	if DB.RedisClient == nil {
		return nil // no redis, no limiting
	}
	key := "topup_rate:" + userID
	n, err := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if err != nil {
		return nil
	}
	if n == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, topUpWindow)
	}
	if n > topUpMaxPerWindow {
		return ErrTooManyTopUps
	}
	return nil
}

// TopUp credits the wallet for one completed checkout. Idempotent on the
// payment reference: the same gateway id never credits twice, so callback
// reloads and retries are safe.
func TopUp(ctx context.Context, userID primitive.ObjectID, planName, paymentReference string) (*TopUpResult, error) {
	plan, err := PlanByName(planName)
	if err != nil {
		return nil, err
	}

	if err := checkTopUpRate(userID.Hex()); err != nil {
		return nil, err
	}

	if paymentReference != "" {
		count, err := DB.WalletTransactionCollection.CountDocuments(ctx, bson.M{"paymentReference": paymentReference})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAlreadyProcessed
		}
	}

	session, err := DB.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	var newBalance float64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user models.User
		after := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := DB.UserCollection.FindOneAndUpdate(sc,
			bson.M{"_id": userID},
			bson.M{"$inc": bson.M{"walletBalance": plan.Amount}},
			after,
		).Decode(&user)
		if err != nil {
			return nil, err
		}
		newBalance = user.WalletBalance

		txn := models.WalletTransaction{
			ID:               primitive.NewObjectID(),
			UserID:           userID,
			Amount:           plan.Amount,
			Type:             models.TxnTypeTopUp,
			Description:      fmt.Sprintf("Wallet top-up (%s plan)", plan.Name),
			PaymentReference: paymentReference,
			CreatedAt:        time.Now(),
		}
		if _, err := DB.WalletTransactionCollection.InsertOne(sc, txn); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return &TopUpResult{Success: true, NewBalance: newBalance, Amount: plan.Amount}, nil
}

// Balance returns the user's current wallet balance.
func Balance(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	var user struct {
		WalletBalance float64 `bson:"walletBalance"`
	}
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}

// Transactions lists the user's wallet history, newest first.
func Transactions(ctx context.Context, userID primitive.ObjectID) ([]models.WalletTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.WalletTransactionCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	txns := []models.WalletTransaction{}
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}
