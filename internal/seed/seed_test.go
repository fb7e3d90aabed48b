package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/internal/catalog/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
courses:
  - title: Intro to Programming
    createdBy: admin
    description: Java fundamentals
    aliases: [CSDS 132]
    reviews:
      - createdBy: student1
        overall: 8
        difficulty: 5
        usefulness: 9
        major: Computer Science
        anonymous: true
        professor: Smith
      - createdBy: student2
        overall: 6
        difficulty: 7
        usefulness: 6
        major: Math
  - title: Data Structures
    createdBy: admin
    prerequisites: [Intro to Programming]
`

func TestLoadAndApply(t *testing.T) {
	f, err := Load(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, f.Courses, 2)
	require.Equal(t, []string{"CSDS 132"}, f.Courses[0].Aliases)
	require.Len(t, f.Courses[0].Reviews, 2)

	ctx := context.Background()
	svc := service.NewMemoryService()
	created, err := Apply(ctx, svc, f)
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.Len(t, created[0].ReviewIDs, 2)
	require.Empty(t, created[1].ReviewIDs)

	c, err := svc.GetCourse(ctx, created[0].CourseID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Programming", c.Title)
	assert.Equal(t, "Java fundamentals", c.Description)
	require.Len(t, c.Reviews, 2)
	assert.True(t, c.Reviews[0].Anonymous)
	assert.Equal(t, "Smith", c.Reviews[0].Professor)
	assert.False(t, c.Reviews[1].Anonymous)

	c, err = svc.GetCourse(ctx, created[1].CourseID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro to Programming"}, c.Prerequisites)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("courses:\n  - titel: typo\n"))
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, f.Courses)
}

func TestApplyStopsAtInvalidReview(t *testing.T) {
	f, err := Load(strings.NewReader(`
courses:
  - title: A
    createdBy: admin
    reviews:
      - createdBy: s
        overall: 1
        difficulty: 1
        major: CS
  - title: B
    createdBy: admin
`))
	require.NoError(t, err)

	svc := service.NewMemoryService()
	created, err := Apply(context.Background(), svc, f)
	require.ErrorIs(t, err, catalog.ErrValidation)
	require.Contains(t, err.Error(), "review 0")
	require.Len(t, created, 1)

	list, err := svc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "course B is never created")
}
