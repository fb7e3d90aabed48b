package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/internal/catalog/service"
	"github.com/makoye224/cwru-courses-backend/pkg/middleware"
)

// Handler exposes the catalog service over HTTP.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the catalog routes. guard runs before every write route.
func (h *Handler) Register(r gin.IRouter, guard gin.HandlerFunc) {
	if guard == nil {
		guard = func(c *gin.Context) { c.Next() }
	}
	courses := r.Group("/api/courses")
	courses.GET("", h.ListCourses)
	courses.GET("/search", h.SearchCourses)
	courses.POST("/search", h.SearchCourses)
	courses.GET("/:id", h.GetCourse)
	courses.POST("", guard, h.CreateCourse)
	courses.DELETE("/:id", guard, h.DeleteCourse)
	courses.POST("/:id/reviews", guard, h.CreateReview)
	courses.PUT("/:id/reviews/:reviewId", guard, h.UpdateReview)
	courses.DELETE("/:id/reviews/:reviewId", guard, h.DeleteReview)

	// flat review routes carry the course id in the body
	reviews := r.Group("/api/reviews", guard)
	reviews.POST("", h.CreateReview)
	reviews.PUT("/:id", h.UpdateReview)
	reviews.DELETE("/:id", h.DeleteReview)
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var req catalog.CourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.Subject(c)
	}
	id, err := h.svc.CreateCourse(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListCourses(c *gin.Context) {
	list, err := h.svc.ListCourses(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": list})
}

// SearchCourses reads the query from ?text= (or ?q=), falling back to a JSON
// body of the form {"text": "..."}.
func (h *Handler) SearchCourses(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = c.Query("q")
	}
	if text == "" && c.Request.ContentLength > 0 {
		var body struct {
			Text string `json:"text"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		text = body.Text
	}
	list, err := h.svc.SearchCourses(c.Request.Context(), text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": list})
}

func (h *Handler) GetCourse(c *gin.Context) {
	course, err := h.svc.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	if err := h.svc.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

type createReviewRequest struct {
	catalog.ReviewInput
	CourseID string `json:"courseId"`
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	courseID := courseIDFrom(c, req.CourseID)
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId is required"})
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.Subject(c)
	}
	id, err := h.svc.CreateReview(c.Request.Context(), courseID, req.ReviewInput)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type updateReviewRequest struct {
	catalog.ReviewPatch
	CourseID string `json:"courseId"`
}

func (h *Handler) UpdateReview(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	courseID := courseIDFrom(c, req.CourseID)
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId is required"})
		return
	}
	if err := h.svc.UpdateReview(c.Request.Context(), courseID, reviewIDFrom(c), req.ReviewPatch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	var body struct {
		CourseID string `json:"courseId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	courseID := courseIDFrom(c, firstNonEmpty(body.CourseID, c.Query("courseId")))
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId is required"})
		return
	}
	if err := h.svc.DeleteReview(c.Request.Context(), courseID, reviewIDFrom(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// courseIDFrom prefers the nested-route path parameter. On the flat review
// routes ":id" is the review id, so the body value is used instead.
func courseIDFrom(c *gin.Context, fromBody string) string {
	if strings.Contains(c.FullPath(), "/courses/:id/reviews") {
		return c.Param("id")
	}
	return fromBody
}

func reviewIDFrom(c *gin.Context) string {
	if id := c.Param("reviewId"); id != "" {
		return id
	}
	return c.Param("id")
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		body := gin.H{"error": err.Error()}
		if f := catalog.FieldOf(err); f != "" {
			body["field"] = f
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
