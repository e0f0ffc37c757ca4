package repositories_test

import (
	"regexp"
	"testing"
	"time"

	"ctws/internal/models"
	"ctws/internal/repositories"
	"ctws/internal/schemas"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB returns a postgres-dialect gorm handle backed by sqlmock, so the
// generated SQL can be checked without a server.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func mealColumns() []string {
	return []string{"id", "name", "description", "calories", "protein", "fat", "carbs", "user_id", "is_deleted", "created_at"}
}

func TestApplyMealFilter_PredicateOrder(t *testing.T) {
	db, mock := newMockDB(t)

	userID := uint(7)
	gt := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	lt := time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)

	query := `SELECT \* FROM "meals" WHERE meals.is_deleted = \$1 AND meals.user_id = \$2 ` +
		`AND meals.created_at > \$3 AND meals.created_at < \$4 ORDER BY meals.id ASC LIMIT \$5 OFFSET \$6`
	mock.ExpectQuery(query).
		WithArgs(false, userID, gt, lt, 10, 20).
		WillReturnRows(sqlmock.NewRows(mealColumns()).
			AddRow(21, "Lunch", nil, 500, 20.0, 10.0, 50.0, 7, false, gt.Add(time.Hour)))

	var meals []models.Meal
	filter := schemas.MealFilter{UserID: &userID, DateGt: &gt, DateLt: &lt}
	err := repositories.ApplyMealFilter(db, filter, schemas.Navigation{Limit: 10, Offset: 20}).Find(&meals).Error
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, uint(21), meals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMealFilter_OnlyPresentPredicates(t *testing.T) {
	db, mock := newMockDB(t)

	lt := time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC)
	query := `SELECT \* FROM "meals" WHERE meals.created_at < \$1 ORDER BY meals.id ASC LIMIT \$2$`
	mock.ExpectQuery(query).
		WithArgs(lt, 100).
		WillReturnRows(sqlmock.NewRows(mealColumns()))

	var meals []models.Meal
	filter := schemas.MealFilter{DateLt: &lt, IncludeDeleted: true}
	err := repositories.ApplyMealFilter(db, filter, schemas.DefaultNavigation()).Find(&meals).Error
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMealFilter_DryRun(t *testing.T) {
	db, _ := newMockDB(t)
	dry := db.Session(&gorm.Session{DryRun: true})

	userID := uint(3)
	stmt := repositories.ApplyMealFilter(dry, schemas.MealFilter{UserID: &userID}, schemas.DefaultNavigation()).
		Find(&[]models.Meal{}).Statement

	sql := stmt.SQL.String()
	assert.Regexp(t, regexp.MustCompile(`is_deleted = \$1 AND meals\.user_id = \$2`), sql)
	assert.NotContains(t, sql, "created_at")
	assert.Equal(t, []interface{}{false, uint(3), 100}, stmt.Vars)
}
