package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/internal/catalog/repository"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
	"github.com/makoye224/cwru-courses-backend/pkg/metrics"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service implements the catalog operations on top of a Repository. It holds
// no per-request state; concurrent review writes on the same course race at
// the store and the last save wins.
type Service struct {
	repo  repository.Repository
	now   func() time.Time
	newID func() string
}

func NewService(r repository.Repository) *Service {
	return &Service{
		repo:  r,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() *Service {
	return NewService(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller owns the client and collection.
func NewMongoService(col *mongo.Collection) *Service {
	return NewService(repository.NewMongoRepo(col))
}

// CreateCourse stores a new course and returns its id.
func (s *Service) CreateCourse(ctx context.Context, in catalog.CourseInput) (id string, err error) {
	defer observe("create_course", &err)
	if err := in.Validate(); err != nil {
		return "", err
	}
	c := &catalog.Course{
		ID:            s.newID(),
		Title:         in.Title,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     s.now(),
		Description:   in.Description,
		Aliases:       in.Aliases,
		Prerequisites: in.Prerequisites,
	}
	c.Normalize()
	if err := s.repo.Insert(ctx, c); err != nil {
		return "", catalog.NewStorageError("insert course", err)
	}
	logger.Debugf("catalog: created course %s (%q)", c.ID, c.Title)
	return c.ID, nil
}

// SearchCourses returns courses matching text, most relevant first. A blank
// query matches nothing.
func (s *Service) SearchCourses(ctx context.Context, text string) (out []catalog.Course, err error) {
	defer observe("search_courses", &err)
	text = strings.TrimSpace(text)
	if text == "" {
		return []catalog.Course{}, nil
	}
	out, err = s.repo.Search(ctx, text)
	if err != nil {
		return nil, catalog.NewStorageError("search courses", err)
	}
	return out, nil
}

// ListCourses returns every course. There is no pagination.
func (s *Service) ListCourses(ctx context.Context) (out []catalog.Course, err error) {
	defer observe("list_courses", &err)
	out, err = s.repo.List(ctx)
	if err != nil {
		return nil, catalog.NewStorageError("list courses", err)
	}
	return out, nil
}

func (s *Service) GetCourse(ctx context.Context, id string) (c *catalog.Course, err error) {
	defer observe("get_course", &err)
	return s.load(ctx, id)
}

// DeleteCourse removes a course together with its embedded reviews.
func (s *Service) DeleteCourse(ctx context.Context, id string) (err error) {
	defer observe("delete_course", &err)
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return catalog.NewNotFoundError("course not found")
		}
		return catalog.NewStorageError("delete course", err)
	}
	logger.Debugf("catalog: deleted course %s", id)
	return nil
}

// CreateReview appends a review to the course and returns the review id.
func (s *Service) CreateReview(ctx context.Context, courseID string, in catalog.ReviewInput) (id string, err error) {
	defer observe("create_review", &err)
	c, err := s.load(ctx, courseID)
	if err != nil {
		return "", err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	r := catalog.Review{
		ID:                 s.newID(),
		CreatedBy:          in.CreatedBy,
		Overall:            *in.Overall,
		Difficulty:         *in.Difficulty,
		Usefulness:         *in.Usefulness,
		Major:              in.Major,
		AdditionalComments: in.AdditionalComments,
		Tips:               in.Tips,
		Professor:          in.Professor,
		CreatedAt:          s.now(),
	}
	if in.Anonymous != nil {
		r.Anonymous = *in.Anonymous
	}
	c.Reviews = append(c.Reviews, r)
	if err := s.save(ctx, c); err != nil {
		return "", err
	}
	logger.Debugf("catalog: course %s gained review %s", c.ID, r.ID)
	return r.ID, nil
}

// UpdateReview merges patch into an existing review.
func (s *Service) UpdateReview(ctx context.Context, courseID, reviewID string, patch catalog.ReviewPatch) (err error) {
	defer observe("update_review", &err)
	c, err := s.load(ctx, courseID)
	if err != nil {
		return err
	}
	i := c.ReviewIndex(reviewID)
	if i < 0 {
		return catalog.NewNotFoundError("review not found")
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	patch.Apply(&c.Reviews[i])
	return s.save(ctx, c)
}

// DeleteReview removes one review, keeping the order of the others.
func (s *Service) DeleteReview(ctx context.Context, courseID, reviewID string) (err error) {
	defer observe("delete_review", &err)
	c, err := s.load(ctx, courseID)
	if err != nil {
		return err
	}
	i := c.ReviewIndex(reviewID)
	if i < 0 {
		return catalog.NewNotFoundError("review not found")
	}
	c.Reviews = append(c.Reviews[:i], c.Reviews[i+1:]...)
	return s.save(ctx, c)
}

func (s *Service) load(ctx context.Context, id string) (*catalog.Course, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, catalog.NewNotFoundError("course not found")
		}
		return nil, catalog.NewStorageError("find course", err)
	}
	return c, nil
}

func (s *Service) save(ctx context.Context, c *catalog.Course) error {
	if err := s.repo.Save(ctx, c); err != nil {
		// the course vanished between load and save
		if errors.Is(err, repository.ErrNotFound) {
			return catalog.NewNotFoundError("course not found")
		}
		return catalog.NewStorageError("save course", err)
	}
	return nil
}

func observe(op string, errp *error) {
	err := *errp
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrValidation):
		outcome = "validation"
	case errors.Is(err, catalog.ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "storage"
		logger.Errorf("catalog: %s: %v", op, err)
	}
	metrics.CatalogOperations.WithLabelValues(op, outcome).Inc()
}
