package mongo

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using MongoDB.
type ApplicationRepo struct {
	col *mongo.Collection
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *mongo.Database) *ApplicationRepo {
	return &ApplicationRepo{col: db.Collection(ApplicationsCollection)}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts a new application. The unique (job, applicant) index turns a
// concurrent duplicate into storage.ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	ts := nowUTC()
	app.ID = primitive.NewObjectID()
	app.CreatedAt = ts
	app.UpdatedAt = ts
	if app.AppliedAt.IsZero() {
		app.AppliedAt = ts
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}

	if _, err := r.col.InsertOne(ctx, app); err != nil {
		return nil, mapError("failed to create application", err)
	}
	return app, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (*models.Application, error) {
	return r.findOne(ctx, bson.M{"job": jobID, "applicant": applicantID})
}

// List returns matching applications ordered by submission time, newest first.
func (r *ApplicationRepo) List(ctx context.Context, f storage.ApplicationFilter) ([]models.Application, error) {
	filter := bson.M{}
	if !f.ApplicantID.IsZero() {
		filter["applicant"] = f.ApplicantID
	}
	if f.JobIDs != nil {
		filter["job"] = bson.M{"$in": idsOrEmpty(f.JobIDs)}
	}

	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError("failed to query applications", err)
	}
	defer cur.Close(ctx)

	apps := []models.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, mapError("failed to decode applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error) {
	var app models.Application
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": nowUTC()}},
		returnAfter(),
	).Decode(&app)
	if err != nil {
		return nil, mapError("failed to update application status", err)
	}
	return &app, nil
}

// Delete is used to roll back a submission whose job back-pointer could not
// be written.
func (r *ApplicationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("failed to delete application", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepo) findOne(ctx context.Context, filter bson.M) (*models.Application, error) {
	var app models.Application
	if err := r.col.FindOne(ctx, filter).Decode(&app); err != nil {
		return nil, mapError("failed to get application", err)
	}
	return &app, nil
}
