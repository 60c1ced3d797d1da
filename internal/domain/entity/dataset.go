package entity

// Dataset is a read-only snapshot of the four base collections.
// It is loaded once per report computation and never mutated afterwards.
type Dataset struct {
	Products   []Product
	Customers  []Customer
	Orders     []Order
	OrderItems []OrderItem
}
