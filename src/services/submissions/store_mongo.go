package submissions

import (
	"context"
	"errors"
	"log"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore backs the pipeline with the live collections. The wallet debit
// and the submission insert run in one session transaction; the debit filter
// requires walletBalance >= price so a concurrent debit cannot overdraw.
type mongoStore struct{}

func (m *mongoStore) ServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var svc models.Service
	err := DB.ServiceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (m *mongoStore) Balance(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	var user struct {
		WalletBalance float64 `bson:"walletBalance"`
	}
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}

func (m *mongoStore) DebitAndCreate(ctx context.Context, userID primitive.ObjectID, price float64, sub *models.Submission) error {
	session, err := DB.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := DB.UserCollection.UpdateOne(sc,
			bson.M{"_id": userID, "walletBalance": bson.M{"$gte": price}},
			bson.M{"$inc": bson.M{"walletBalance": -price}},
		)
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			// balance moved under us between the check and the debit
			return nil, &ErrInsufficientFunds{Price: price, Shortfall: price}
		}

		if _, err := DB.SubmissionCollection.InsertOne(sc, sub); err != nil {
			return nil, err
		}

		txn := models.WalletTransaction{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			Amount:      -price,
			Type:        models.TxnTypeDebit,
			Description: "Service application fee",
			CreatedAt:   time.Now(),
		}
		if _, err := DB.WalletTransactionCollection.InsertOne(sc, txn); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	log.Printf("[submission] inserted id=%s user=%s debit=%.2f", sub.ID.Hex(), userID.Hex(), price)
	return nil
}

func (m *mongoStore) SubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var sub models.Submission
	err := DB.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (m *mongoStore) ListByUserAndService(ctx context.Context, userID, serviceID primitive.ObjectID) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.SubmissionCollection.Find(ctx, bson.M{"userId": userID, "serviceId": serviceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (m *mongoStore) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := DB.SubmissionCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (m *mongoStore) SetFinalDocument(ctx context.Context, id primitive.ObjectID, path string) error {
	res, err := DB.SubmissionCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"finalDocumentUrl": path, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
