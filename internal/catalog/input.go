package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// required text fields may not be whitespace only
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// report json names so errors line up with request bodies
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// CourseInput is the payload accepted by CreateCourse.
type CourseInput struct {
	Title         string   `json:"title" yaml:"title" validate:"required,notblank"`
	CreatedBy     string   `json:"createdBy" yaml:"createdBy" validate:"required,notblank"`
	Description   string   `json:"description,omitempty" yaml:"description"`
	Aliases       []string `json:"aliases,omitempty" yaml:"aliases"`
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites"`
}

func (in *CourseInput) Validate() error {
	return structError(validate.Struct(in))
}

// ReviewInput is the payload accepted by CreateReview. Ratings are pointers so
// that a missing rating is distinguishable from a zero rating.
type ReviewInput struct {
	CreatedBy          string   `json:"createdBy" yaml:"createdBy" validate:"required,notblank"`
	Overall            *float64 `json:"overall" yaml:"overall" validate:"required"`
	Difficulty         *float64 `json:"difficulty" yaml:"difficulty" validate:"required"`
	Usefulness         *float64 `json:"usefulness" yaml:"usefulness" validate:"required"`
	Major              string   `json:"major" yaml:"major" validate:"required,notblank"`
	Anonymous          *bool    `json:"anonymous,omitempty" yaml:"anonymous"`
	AdditionalComments string   `json:"additionalComments,omitempty" yaml:"additionalComments"`
	Tips               string   `json:"tips,omitempty" yaml:"tips"`
	Professor          string   `json:"professor,omitempty" yaml:"professor"`
}

func (in *ReviewInput) Validate() error {
	return structError(validate.Struct(in))
}

// ReviewPatch carries a partial review update. A nil field is left untouched;
// a non-nil field overwrites, including false and empty values.
type ReviewPatch struct {
	Overall            *float64 `json:"overall,omitempty"`
	Difficulty         *float64 `json:"difficulty,omitempty"`
	Usefulness         *float64 `json:"usefulness,omitempty"`
	Major              *string  `json:"major,omitempty"`
	Anonymous          *bool    `json:"anonymous,omitempty"`
	AdditionalComments *string  `json:"additionalComments,omitempty"`
	Tips               *string  `json:"tips,omitempty"`
	Professor          *string  `json:"professor,omitempty"`
}

func (p *ReviewPatch) Validate() error {
	if p.Major != nil && strings.TrimSpace(*p.Major) == "" {
		return NewValidationError("major", "major is required")
	}
	return nil
}

// Apply merges the patch into r.
func (p *ReviewPatch) Apply(r *Review) {
	if p.Overall != nil {
		r.Overall = *p.Overall
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.Usefulness != nil {
		r.Usefulness = *p.Usefulness
	}
	if p.Major != nil {
		r.Major = *p.Major
	}
	if p.Anonymous != nil {
		r.Anonymous = *p.Anonymous
	}
	if p.AdditionalComments != nil {
		r.AdditionalComments = *p.AdditionalComments
	}
	if p.Tips != nil {
		r.Tips = *p.Tips
	}
	if p.Professor != nil {
		r.Professor = *p.Professor
	}
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewValidationError(fe.Field(), fe.Field()+" is required")
	}
	return &Error{Kind: ErrValidation, Err: err}
}
