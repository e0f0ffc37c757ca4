package models

// All returns every model managed by the service, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Meal{},
		&UserBodyParameters{},
		&UserTelegramCredentials{},
	}
}
