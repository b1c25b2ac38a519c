package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryHistoryRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewSalaryHistoryRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_histories (employee_id, previous_salary, new_salary)")).
		WithArgs(testEmployeeID, "1000.00", "1200.50").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "previous_salary", "new_salary", "changed_at"}).
			AddRow("sh-1", testEmployeeID, "1000.00", "1200.50", now))

	created, err := repo.Create(context.Background(), salary.SalaryHistory{
		EmployeeID:     testEmployeeID,
		PreviousSalary: decimal.NewFromInt(1000),
		NewSalary:      decimal.RequireFromString("1200.5"),
		EmployeeName:   "Jane Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, "sh-1", created.ID)
	assert.Equal(t, "Jane Doe", created.EmployeeName)
	assert.True(t, created.NewSalary.Equal(decimal.RequireFromString("1200.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryHistoryRepository_ListByEmployeeID(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewSalaryHistoryRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sh.changed_at, sh.id")).
		WithArgs(testEmployeeID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "name", "previous_salary", "new_salary", "changed_at"}).
			AddRow("sh-1", testEmployeeID, "Jane Doe", "1000.00", "1200.00", now.Add(-time.Hour)).
			AddRow("sh-2", testEmployeeID, "Jane Doe", "1200.00", "1500.00", now))

	history, err := repo.ListByEmployeeID(context.Background(), testEmployeeID)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "sh-1", history[0].ID)
	assert.True(t, history[1].PreviousSalary.Equal(history[0].NewSalary))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryHistoryRepository_CountByEmployeeID(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewSalaryHistoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM salary_histories WHERE employee_id = $1")).
		WithArgs(testEmployeeID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountByEmployeeID(context.Background(), testEmployeeID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewReviewRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO performance_reviews (employee_id, review, rating)")).
		WithArgs(testEmployeeID, "Great quarter", 9).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "review", "rating", "created_at"}).
			AddRow("r-1", testEmployeeID, "Great quarter", 9, now))

	created, err := repo.Create(context.Background(), review.PerformanceReview{
		EmployeeID: testEmployeeID,
		Review:     "Great quarter",
		Rating:     9,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, created.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_ListByMinRating(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewReviewRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE pr.rating >= $1 AND e.archived = false")).
		WithArgs(review.TopPerformerRating).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "name", "review", "rating", "created_at"}).
			AddRow("r-1", "e-1", "Jane Doe", "Outstanding", 10, now).
			AddRow("r-2", "e-2", "John Roe", "Very good", 9, now))

	reviews, err := repo.ListByMinRating(context.Background(), review.TopPerformerRating)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Jane Doe", reviews[0].EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_WrongEmployee(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM performance_reviews WHERE id = $1 AND employee_id = $2")).
		WithArgs("r-1", testEmployeeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "r-1", testEmployeeID)

	assert.ErrorIs(t, err, review.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Stats(t *testing.T) {
	t.Run("with reviews", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewReviewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), ROUND(AVG(rating), 2)")).
			WithArgs(testEmployeeID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(int64(2), "8.50"))

		stats, err := repo.Stats(context.Background(), testEmployeeID)

		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Count)
		require.NotNil(t, stats.AverageRating)
		assert.Equal(t, "8.50", stats.AverageRating.StringFixed(2))
	})

	t.Run("no reviews", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := NewReviewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), ROUND(AVG(rating), 2)")).
			WithArgs(testEmployeeID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(int64(0), nil))

		stats, err := repo.Stats(context.Background(), testEmployeeID)

		require.NoError(t, err)
		assert.Zero(t, stats.Count)
		assert.Nil(t, stats.AverageRating)
	})
}
