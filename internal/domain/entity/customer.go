package entity

// Customer is a buyer located in a single city.
type Customer struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}
