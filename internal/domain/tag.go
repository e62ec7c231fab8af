package domain

// Tag is admin-managed reference data. Color is a HEX string like #FF0000
// or #F00; Slug is the unique URL handle used by recipe filters.
type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200;not null"`
	Color string `json:"color" gorm:"size:7;not null" validate:"required,hexcolor"`
	Slug  string `json:"slug" gorm:"size:200;not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }
