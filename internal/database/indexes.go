package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness and query indexes. Safe to call on
// every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "externalId", Value: 1}},
			Options: options.Index().SetName("uniq_external_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection("jobs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("by_created"),
		},
		{
			Keys:    bson.D{{Key: "recruiter", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("by_recruiter_created"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("by_legacy_user").SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("jobs indexes: %w", err)
	}

	_, err = db.Collection("applications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}},
			Options: options.Index().SetName("uniq_job_applicant").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "applicant", Value: 1}, {Key: "appliedAt", Value: -1}},
			Options: options.Index().SetName("by_applicant_applied"),
		},
	})
	if err != nil {
		return fmt.Errorf("applications indexes: %w", err)
	}
	return nil
}
