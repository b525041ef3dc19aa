package mongo

import (
	"errors"
	"fmt"
	"time"

	"jobboard-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection        = "users"
	JobsCollection         = "jobs"
	ApplicationsCollection = "applications"
)

// mapError translates driver errors into storage sentinels.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// returnAfter is the FindOneAndUpdate option that yields the updated document.
func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func nowUTC() time.Time {
	// BSON dates carry millisecond precision.
	return time.Now().UTC().Truncate(time.Millisecond)
}

// idsOrEmpty keeps $in queries well-formed for empty inputs.
func idsOrEmpty(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
