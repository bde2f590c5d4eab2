package catalog

import (
	"context"
	"errors"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrServiceNotFound = errors.New("service not found")

// ErrServiceInUse rejects deleting a service that submissions still
// reference; past applications must keep resolving their service.
var ErrServiceInUse = errors.New("service has existing submissions")

// CreateService stores a new service with its form schema.
func CreateService(ctx context.Context, svc *models.Service) (*models.Service, error) {
	now := time.Now()
	svc.ID = primitive.NewObjectID()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if svc.Fields == nil {
		svc.Fields = []models.FormField{}
	}

	if _, err := DB.ServiceCollection.InsertOne(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService replaces the editable attributes, including the field list
// emitted by the form builder.
func UpdateService(ctx context.Context, id primitive.ObjectID, svc *models.Service) (*models.Service, error) {
	update := bson.M{"$set": bson.M{
		"name":        svc.Name,
		"description": svc.Description,
		"price":       svc.Price,
		"categoryId":  svc.CategoryID,
		"fields":      svc.Fields,
		"logoUrl":     svc.LogoURL,
		"isActive":    svc.IsActive,
		"updatedAt":   time.Now(),
	}}

	res, err := DB.ServiceCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrServiceNotFound
	}
	return GetServiceByID(ctx, id)
}

// DeleteService removes a service. Refused while submissions reference it.
func DeleteService(ctx context.Context, id primitive.ObjectID) error {
	count, err := DB.SubmissionCollection.CountDocuments(ctx, bson.M{"serviceId": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrServiceInUse
	}

	res, err := DB.ServiceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// GetServiceByID returns one service.
func GetServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
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

// GetActiveServices lists active services for the public catalog, optionally
// filtered by category.
func GetActiveServices(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Service, error) {
	filter := bson.M{"isActive": true}
	if categoryID != nil {
		filter["categoryId"] = *categoryID
	}
	return findServices(ctx, filter)
}

// GetAllServices lists every service for the admin screens.
func GetAllServices(ctx context.Context) ([]models.Service, error) {
	return findServices(ctx, bson.M{})
}

// GetRecentJobServices lists active services in the given category created
// within the last `days` days, newest first (the job-alert feed).
func GetRecentJobServices(ctx context.Context, categoryID primitive.ObjectID, days, limit int) ([]models.Service, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	filter := bson.M{
		"categoryId": categoryID,
		"isActive":   true,
		"createdAt":  bson.M{"$gte": cutoff},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := DB.ServiceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func findServices(ctx context.Context, filter bson.M) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.ServiceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CountServices returns the catalog size for the dashboard stats.
func CountServices(ctx context.Context) (int64, error) {
	return DB.ServiceCollection.CountDocuments(ctx, bson.M{})
}
