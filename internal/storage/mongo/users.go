package mongo

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo implements the storage.UserRepository interface using MongoDB.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(UsersCollection)}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ListByIDs returns the users that still exist among ids.
func (r *UserRepo) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, mapError("failed to query users", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, mapError("failed to decode users", err)
	}
	return users, nil
}

func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"externalId": externalID})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Create inserts a new user. A duplicate externalId or email yields
// storage.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ts := nowUTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	if user.Role == "" {
		user.Role = models.RoleJobSeeker
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return nil, mapError("failed to create user", err)
	}
	return user, nil
}

// UpdateExternalID re-links an existing record to a rotated provider id.
func (r *UserRepo) UpdateExternalID(ctx context.Context, id primitive.ObjectID, externalID string) (*models.User, error) {
	return r.update(ctx, id, bson.M{"$set": bson.M{"externalId": externalID, "updatedAt": nowUTC()}})
}

func (r *UserRepo) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) (*models.User, error) {
	set := bson.M{"updatedAt": nowUTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Profile != nil {
		set["profile"] = req.Profile
	}
	if req.Company != nil {
		set["company"] = req.Company
	}
	if req.Settings != nil {
		set["settings"] = req.Settings
	}
	return r.update(ctx, id, bson.M{"$set": set})
}

func (r *UserRepo) AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error) {
	return r.update(ctx, userID, bson.M{
		"$addToSet": bson.M{"savedJobs": jobID},
		"$set":      bson.M{"updatedAt": nowUTC()},
	})
}

func (r *UserRepo) RemoveSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (*models.User, error) {
	return r.update(ctx, userID, bson.M{
		"$pull": bson.M{"savedJobs": jobID},
		"$set":  bson.M{"updatedAt": nowUTC()},
	})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapError("failed to get user", err)
	}
	return &user, nil
}

func (r *UserRepo) update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	var user models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnAfter()).Decode(&user); err != nil {
		return nil, mapError("failed to update user", err)
	}
	return &user, nil
}
