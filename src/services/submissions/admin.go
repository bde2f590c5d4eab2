package submissions

import (
	"context"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationView is a submission joined with the applicant's email and the
// service it targets, as shown on the admin review screens. Fields carries
// the service's current schema so the UI can map data keys to labels (keys
// that no longer match fall back to the raw key).
type ApplicationView struct {
	models.Submission `bson:",inline"`
	UserEmail         string             `bson:"userEmail" json:"userEmail"`
	ServiceName       string             `bson:"serviceName" json:"serviceName"`
	CategoryName      string             `bson:"categoryName" json:"categoryName"`
	Fields            []models.FormField `bson:"fields" json:"fields"`
}

func applicationPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$lookup": bson.M{
			"from":         "services",
			"localField":   "serviceId",
			"foreignField": "_id",
			"as":           "service",
		}},
		{"$unwind": bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}},
		{"$unwind": bson.M{"path": "$service", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         "categories",
			"localField":   "service.categoryId",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$unwind": bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}},
		{"$addFields": bson.M{
			"userEmail":    "$user.email",
			"serviceName":  "$service.name",
			"categoryName": "$category.name",
			"fields":       "$service.fields",
		}},
		{"$project": bson.M{"user": 0, "service": 0, "category": 0}},
	}
}

// ListApplications returns all submissions for the admin screen, optionally
// filtered by status, newest first.
func ListApplications(ctx context.Context, status string) ([]ApplicationView, error) {
	match := bson.M{}
	if status != "" {
		match["status"] = status
	}

	cur, err := DB.SubmissionCollection.Aggregate(ctx, applicationPipeline(match))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []ApplicationView{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApplication returns one joined application detail.
func GetApplication(ctx context.Context, id primitive.ObjectID) (*ApplicationView, error) {
	cur, err := DB.SubmissionCollection.Aggregate(ctx, applicationPipeline(bson.M{"_id": id}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []ApplicationView
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrSubmissionNotFound
	}
	return &out[0], nil
}

// CountByStatus returns submission totals for the dashboard stats.
func CountByStatus(ctx context.Context) (total, pending, approved, rejected int64, err error) {
	total, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return
	}
	pending, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		return
	}
	approved, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{"status": models.StatusApproved})
	if err != nil {
		return
	}
	rejected, err = DB.SubmissionCollection.CountDocuments(ctx, bson.M{"status": models.StatusRejected})
	return
}
