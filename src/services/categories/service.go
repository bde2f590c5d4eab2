package categories

import (
	"context"
	"errors"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrCategoryNotFound = errors.New("category not found")

// CreateCategory stores a new category.
func CreateCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	cat.ID = primitive.NewObjectID()
	if _, err := DB.CategoryCollection.InsertOne(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory updates name and active flag.
func UpdateCategory(ctx context.Context, id primitive.ObjectID, cat *models.Category) error {
	res, err := DB.CategoryCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": cat.Name, "isActive": cat.IsActive}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.CategoryCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// GetCategoryByID returns one category.
func GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var cat models.Category
	err := DB.CategoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// GetCategories lists categories; activeOnly hides disabled ones for the
// public navigation.
func GetCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := DB.CategoryCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cats := []models.Category{}
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// FindJobCategory locates the job-applications category used by the
// notification feed. Falls back from the exact name to anything job-like.
func FindJobCategory(ctx context.Context) (*models.Category, error) {
	var cat models.Category
	err := DB.CategoryCollection.FindOne(ctx, bson.M{"name": bson.M{"$regex": "job.*application", "$options": "i"}}).Decode(&cat)
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	err = DB.CategoryCollection.FindOne(ctx, bson.M{"name": bson.M{"$regex": "job", "$options": "i"}}).Decode(&cat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}
