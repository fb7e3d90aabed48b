package catalog

import "time"

// Course is the catalog document. Reviews are embedded and share the course's
// lifecycle: removing the course removes them with it.
type Course struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	CreatedBy     string    `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Aliases       []string  `json:"aliases" bson:"aliases"`
	Prerequisites []string  `json:"prerequisites" bson:"prerequisites"`
	Reviews       []Review  `json:"reviews" bson:"reviews"`
}

// Review is always stored inside exactly one Course. Its ID is only unique
// within that course.
type Review struct {
	ID                 string    `json:"id" bson:"_id"`
	CreatedBy          string    `json:"createdBy" bson:"createdBy"`
	Overall            float64   `json:"overall" bson:"overall"`
	Difficulty         float64   `json:"difficulty" bson:"difficulty"`
	Usefulness         float64   `json:"usefulness" bson:"usefulness"`
	Major              string    `json:"major" bson:"major"`
	Anonymous          bool      `json:"anonymous" bson:"anonymous"`
	AdditionalComments string    `json:"additionalComments,omitempty" bson:"additionalComments,omitempty"`
	Tips               string    `json:"tips,omitempty" bson:"tips,omitempty"`
	Professor          string    `json:"professor,omitempty" bson:"professor,omitempty"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

// ReviewIndex returns the position of the review with the given id, or -1.
func (c *Course) ReviewIndex(reviewID string) int {
	for i := range c.Reviews {
		if c.Reviews[i].ID == reviewID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Aliases = cloneStrings(c.Aliases)
	out.Prerequisites = cloneStrings(c.Prerequisites)
	out.Reviews = make([]Review, len(c.Reviews))
	copy(out.Reviews, c.Reviews)
	return &out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Normalize replaces nil sequences with empty ones so a course always
// serializes with arrays rather than nulls.
func (c *Course) Normalize() {
	if c.Aliases == nil {
		c.Aliases = []string{}
	}
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}
	if c.Reviews == nil {
		c.Reviews = []Review{}
	}
}
