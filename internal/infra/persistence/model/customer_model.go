package model

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
	City string `gorm:"type:varchar(100);not null;index:idx_customers_on_city"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
