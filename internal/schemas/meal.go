package schemas

import (
	"time"

	"ctws/internal/models"

	"github.com/go-playground/validator/v10"
)

// MealFilter selects meals for listing. Every field is optional; absent
// fields do not constrain the result.
type MealFilter struct {
	UserID         *uint      `json:"user_id"`
	DateGt         *time.Time `json:"date_gt"`
	DateLt         *time.Time `json:"date_lt"`
	IncludeDeleted bool       `json:"include_deleted"`
}

// mealFilterRules rejects an empty or inverted date window.
func mealFilterRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(MealFilter)
	if f.DateGt != nil && f.DateLt != nil && !f.DateGt.Before(*f.DateLt) {
		sl.ReportError(f.DateLt, "date_lt", "DateLt", tagDateRange, "")
	}
}

// MealFilterQuery is the raw query-string form of MealFilter.
type MealFilterQuery struct {
	UserID         *uint  `query:"user_id"`
	DateGt         string `query:"date_gt"`
	DateLt         string `query:"date_lt"`
	IncludeDeleted bool   `query:"include_deleted"`
}

// Filter parses the datetimes and validates the resulting filter.
func (q MealFilterQuery) Filter() (MealFilter, error) {
	gt, err := ParseDateTime("date_gt", q.DateGt)
	if err != nil {
		return MealFilter{}, err
	}
	lt, err := ParseDateTime("date_lt", q.DateLt)
	if err != nil {
		return MealFilter{}, err
	}
	f := MealFilter{
		UserID:         q.UserID,
		DateGt:         gt,
		DateLt:         lt,
		IncludeDeleted: q.IncludeDeleted,
	}
	if err := Validate(f); err != nil {
		return MealFilter{}, err
	}
	return f, nil
}

// MealCreate is the request body for logging a meal.
type MealCreate struct {
	UserID      uint     `json:"user_id" validate:"required"`
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Calories    *int     `json:"calories" validate:"required,gte=0"`
	Protein     *float64 `json:"protein" validate:"required,gte=0"`
	Fat         *float64 `json:"fat" validate:"required,gte=0"`
	Carbs       *float64 `json:"carbs" validate:"required,gte=0"`
}

// Model converts the request into an unsaved meal owned by userID.
func (m MealCreate) Model(userID uint) *models.Meal {
	return &models.Meal{
		Name:        m.Name,
		Description: m.Description,
		Calories:    *m.Calories,
		Protein:     *m.Protein,
		Fat:         *m.Fat,
		Carbs:       *m.Carbs,
		UserID:      userID,
	}
}

// MealResponse is the wire form of a stored meal.
type MealResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"`
	Fat         float64   `json:"fat"`
	Carbs       float64   `json:"carbs"`
	UserID      uint      `json:"user_id"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMealResponse(m *models.Meal) MealResponse {
	return MealResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Fat:         m.Fat,
		Carbs:       m.Carbs,
		UserID:      m.UserID,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func NewMealResponses(meals []models.Meal) []MealResponse {
	out := make([]MealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, NewMealResponse(&meals[i]))
	}
	return out
}
