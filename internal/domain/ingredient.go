package domain

// Ingredient is reference data, bulk-loaded from CSV and admin-editable.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:255;not null;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:64;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }
