package mongo

import (
	"regexp"
	"strings"
	"time"

	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildJobFilter translates list parameters into a jobs collection filter.
// All supplied conditions are combined with AND. User input is always
// matched literally.
func BuildJobFilter(req *dto.ListJobsRequest, now time.Time) bson.M {
	filter := bson.M{}
	var anyOf bson.A

	if s := strings.TrimSpace(req.Search); s != "" {
		contains := containsCI(s)
		anyOf = append(anyOf,
			bson.M{"jobTitle": contains},
			bson.M{"companyName": contains},
			bson.M{"jobDescription": contains},
			bson.M{"requiredSkills": equalsCI(s)},
		)
	}

	if req.Remote {
		anyOf = append(anyOf, bson.M{"location": containsCI("remote")})
	}
	if len(anyOf) > 0 {
		filter["$or"] = anyOf
	}

	if l := strings.TrimSpace(req.Location); l != "" {
		filter["location"] = containsCI(l)
	}
	if req.Type != "" {
		filter["jobType"] = req.Type
	}
	if req.Level != "" {
		filter["experienceLevel"] = req.Level
	}
	if req.Category != "" {
		filter["category"] = req.Category
	}

	// Posting minimum at least X, posting maximum at most Y.
	if req.SalaryMin != nil {
		filter["salaryMin"] = bson.M{"$gte": *req.SalaryMin}
	}
	if req.SalaryMax != nil {
		filter["salaryMax"] = bson.M{"$lte": *req.SalaryMax}
	}

	if req.RecentlyPosted {
		filter["createdAt"] = bson.M{"$gte": now.AddDate(0, 0, -7)}
	}
	// postedDate wins over recentlyPosted.
	if since, ok := postedSince(req.PostedDate, now); ok {
		filter["createdAt"] = bson.M{"$gte": since}
	}

	return filter
}

func postedSince(window string, now time.Time) (time.Time, bool) {
	switch window {
	case dto.PostedToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case dto.Posted3Days:
		return now.AddDate(0, 0, -3), true
	case dto.PostedThisWeek:
		return now.AddDate(0, 0, -7), true
	case dto.PostedMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// BuildJobSort maps a sort key to a sort document. Every order ends with _id
// so that paging over equal keys is stable.
func BuildJobSort(sort string) bson.D {
	switch sort {
	case dto.SortOldest:
		return bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
	case dto.SortSalaryHigh:
		return bson.D{{Key: "salaryMax", Value: -1}, {Key: "salaryMin", Value: -1}, {Key: "_id", Value: -1}}
	case dto.SortSalaryLow:
		return bson.D{{Key: "salaryMin", Value: 1}, {Key: "salaryMax", Value: 1}, {Key: "_id", Value: 1}}
	case dto.SortAlphabetical:
		return bson.D{{Key: "jobTitle", Value: 1}, {Key: "_id", Value: 1}}
	default: // recent, relevant, unknown
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

// PageSkip converts a normalized page and limit into a document offset.
func PageSkip(page, limit int) int64 {
	if page < 1 {
		return 0
	}
	return int64(page-1) * int64(limit)
}

func containsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func equalsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}
