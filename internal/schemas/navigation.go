package schemas

// Pagination bounds for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Navigation is the limit/offset pair applied to list queries.
type Navigation struct {
	Limit  int `json:"limit" validate:"gte=1,lte=100"`
	Offset int `json:"offset" validate:"gte=0"`
}

// DefaultNavigation returns the first page with the maximum page size.
func DefaultNavigation() Navigation {
	return Navigation{Limit: DefaultLimit, Offset: 0}
}

// NavigationQuery is the raw query-string form of Navigation.
type NavigationQuery struct {
	Limit  *int `query:"limit"`
	Offset *int `query:"offset"`
}

// Navigation applies defaults for absent parameters and validates the result.
func (q NavigationQuery) Navigation() (Navigation, error) {
	nav := DefaultNavigation()
	if q.Limit != nil {
		nav.Limit = *q.Limit
	}
	if q.Offset != nil {
		nav.Offset = *q.Offset
	}
	if err := Validate(nav); err != nil {
		return Navigation{}, err
	}
	return nav, nil
}
