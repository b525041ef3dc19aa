package mongo

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobRepo implements the storage.JobRepository interface using MongoDB.
type JobRepo struct {
	col *mongo.Collection
	now func() time.Time
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *mongo.Database) *JobRepo {
	return &JobRepo{col: db.Collection(JobsCollection), now: time.Now}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting. ID and timestamps are assigned here.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	ts := nowUTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = ts
	job.UpdatedAt = ts
	if job.Applications == nil {
		job.Applications = []primitive.ObjectID{}
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}

	if _, err := r.col.InsertOne(ctx, job); err != nil {
		return nil, mapError("failed to create job", err)
	}
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, mapError("failed to get job", err)
	}
	return &job, nil
}

// ListByIDs returns the jobs that still exist among ids, in no particular order.
func (r *JobRepo) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error) {
	if len(ids) == 0 {
		return []models.Job{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Search runs a filtered, sorted and paginated listing.
func (r *JobRepo) Search(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, int64, error) {
	filter := BuildJobFilter(req, r.now())

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mapError("failed to count jobs", err)
	}

	opts := options.Find().
		SetSort(BuildJobSort(req.Sort)).
		SetSkip(PageSkip(req.Page, req.Limit)).
		SetLimit(int64(req.Limit))

	jobs, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ListByOwner retrieves every job posted by ownerID, newest first.
func (r *JobRepo) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, legacyUserID string) ([]models.Job, error) {
	filter := bson.M{"recruiter": ownerID}
	if legacyUserID != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"recruiter": ownerID},
			bson.M{"userId": legacyUserID},
		}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return r.find(ctx, filter, opts)
}

// ListIDsByRecruiter returns the ids of the jobs owned by ownerID.
func (r *JobRepo) ListIDsByRecruiter(ctx context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := r.col.Find(ctx, bson.M{"recruiter": ownerID}, opts)
	if err != nil {
		return nil, mapError("failed to list recruiter jobs", err)
	}
	defer cur.Close(ctx)

	ids := []primitive.ObjectID{}
	for cur.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, mapError("failed to decode job id", err)
		}
		ids = append(ids, row.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, mapError("failed to iterate recruiter jobs", err)
	}
	return ids, nil
}

// Update applies the supplied fields and returns the updated job.
func (r *JobRepo) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateJobRequest) (*models.Job, error) {
	set := bson.M{"updatedAt": nowUTC()}
	if req.JobTitle != nil {
		set["jobTitle"] = *req.JobTitle
	}
	if req.CompanyName != nil {
		set["companyName"] = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		set["companyLogo"] = *req.CompanyLogo
	}
	if req.JobDescription != nil {
		set["jobDescription"] = *req.JobDescription
	}
	if req.JobType != nil {
		set["jobType"] = *req.JobType
	}
	if req.ExperienceLevel != nil {
		set["experienceLevel"] = *req.ExperienceLevel
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.RequiredSkills != nil {
		set["requiredSkills"] = req.RequiredSkills
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.SalaryMin != nil {
		set["salaryMin"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		set["salaryMax"] = *req.SalaryMax
	}
	if req.Deadline != nil {
		set["deadline"] = req.Deadline.UTC()
	}
	if req.IsTestRequired != nil {
		set["isTestRequired"] = *req.IsTestRequired
	}
	if req.Openings != nil {
		set["openings"] = *req.Openings
	}
	if req.ContactEmail != nil {
		set["contactEmail"] = *req.ContactEmail
	}

	var job models.Job
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnAfter()).Decode(&job)
	if err != nil {
		return nil, mapError("failed to update job", err)
	}
	return &job, nil
}

// IncrementViews atomically bumps the view counter and returns the job with
// the incremented value.
func (r *JobRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}, returnAfter()).Decode(&job)
	if err != nil {
		return nil, mapError("failed to increment job views", err)
	}
	return &job, nil
}

// AppendApplication records applicationID in the job's back-pointer list.
func (r *JobRepo) AppendApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{
			"$addToSet": bson.M{"applications": applicationID},
			"$set":      bson.M{"updatedAt": nowUTC()},
		},
	)
	if err != nil {
		return mapError("failed to append application", err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes the job. Applications referencing it are left in place.
func (r *JobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("failed to delete job", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *JobRepo) find(ctx context.Context, filter any, opts *options.FindOptions) ([]models.Job, error) {
	if opts == nil {
		opts = options.Find()
	}
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError("failed to query jobs", err)
	}
	defer cur.Close(ctx)

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, mapError("failed to decode jobs", err)
	}
	return jobs, nil
}
