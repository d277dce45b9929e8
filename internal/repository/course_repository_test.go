package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryListByProgram(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	now := time.Now()
	courseRows := sqlmock.NewRows([]string{"id", "program_id", "code", "name", "credits", "created_at"}).
		AddRow("c-algo", "p1", "CS201", "Algorithms", 6, now).
		AddRow("c-intro", "p1", "CS101", "Intro to CS", 6, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, program_id, code, name, credits, created_at FROM courses WHERE program_id = $1 ORDER BY code ASC")).
		WithArgs("p1").
		WillReturnRows(courseRows)

	edgeRows := sqlmock.NewRows([]string{"course_id", "prerequisite_id"}).
		AddRow("c-algo", "c-intro")
	mock.ExpectQuery("SELECT course_id, prerequisite_id FROM course_prerequisites WHERE course_id IN").
		WithArgs("c-algo", "c-intro").
		WillReturnRows(edgeRows)

	courses, err := repo.ListByProgram(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, []string{"c-intro"}, courses[0].Prerequisites)
	assert.Empty(t, courses[1].Prerequisites)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListByProgramEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT id, program_id, code, name, credits, created_at FROM courses").
		WithArgs("p-empty").
		WillReturnRows(sqlmock.NewRows([]string{"id", "program_id", "code", "name", "credits", "created_at"}))

	courses, err := repo.ListByProgram(context.Background(), "p-empty")
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
