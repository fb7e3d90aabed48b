package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string    { return &v }
func boolp(v bool) *bool      { return &v }

func TestCourseInputValidate(t *testing.T) {
	ok := CourseInput{Title: "CS101", CreatedBy: "alice"}
	require.NoError(t, ok.Validate())

	missingTitle := CourseInput{CreatedBy: "alice"}
	err := missingTitle.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "title", FieldOf(err))

	missingAuthor := CourseInput{Title: "CS101"}
	err = missingAuthor.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "createdBy", FieldOf(err))
}

func TestCourseInputRejectsBlankText(t *testing.T) {
	blankTitle := CourseInput{Title: "   ", CreatedBy: "alice"}
	err := blankTitle.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "title", FieldOf(err))

	blankAuthor := CourseInput{Title: "CS101", CreatedBy: "\t\n"}
	err = blankAuthor.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "createdBy", FieldOf(err))

	in := ReviewInput{CreatedBy: "bob", Overall: f64(1), Difficulty: f64(1), Usefulness: f64(1), Major: "  "}
	err = in.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "major", FieldOf(err))
}

func TestReviewInputValidate(t *testing.T) {
	in := ReviewInput{CreatedBy: "bob", Overall: f64(0), Difficulty: f64(3), Usefulness: f64(4), Major: "CS"}
	require.NoError(t, in.Validate(), "a zero rating is still a provided rating")

	in.Usefulness = nil
	err := in.Validate()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "usefulness", FieldOf(err))

	in.Usefulness = f64(4)
	in.Major = ""
	require.ErrorIs(t, in.Validate(), ErrValidation)
}

func TestReviewPatchApply(t *testing.T) {
	r := Review{Overall: 3, Difficulty: 2, Usefulness: 1, Major: "CS", Anonymous: true, Tips: "start early", Professor: "Smith"}

	(&ReviewPatch{Overall: f64(5)}).Apply(&r)
	require.Equal(t, 5.0, r.Overall)
	require.Equal(t, 2.0, r.Difficulty)
	require.True(t, r.Anonymous)
	require.Equal(t, "start early", r.Tips)

	(&ReviewPatch{Anonymous: boolp(false), Tips: str("")}).Apply(&r)
	require.False(t, r.Anonymous)
	require.Empty(t, r.Tips)
	require.Equal(t, "Smith", r.Professor)
}

func TestReviewPatchRejectsEmptyMajor(t *testing.T) {
	err := (&ReviewPatch{Major: str("")}).Validate()
	require.True(t, errors.Is(err, ErrValidation))
	require.ErrorIs(t, (&ReviewPatch{Major: str("  ")}).Validate(), ErrValidation)
	require.NoError(t, (&ReviewPatch{Major: str("Math")}).Validate())
}

func TestCourseCloneIsDeep(t *testing.T) {
	c := &Course{ID: "c1", Aliases: []string{"a"}, Reviews: []Review{{ID: "r1"}}}
	cp := c.Clone()
	cp.Aliases[0] = "b"
	cp.Reviews[0].ID = "r2"
	require.Equal(t, "a", c.Aliases[0])
	require.Equal(t, "r1", c.Reviews[0].ID)
	require.Equal(t, 0, c.ReviewIndex("r1"))
	require.Equal(t, -1, c.ReviewIndex("missing"))
}

func TestErrorUnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("save course", cause)
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection refused")
}
