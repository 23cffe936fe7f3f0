package catalog

type Tag struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:256;not null;uniqueIndex" json:"name"`
	Slug string `gorm:"size:256;not null;uniqueIndex" json:"slug"`
}

func (Tag) TableName() string { return "tags" }

type Ingredient struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:256;not null;index;uniqueIndex:idx_ingredient_name_unit" json:"name"`
	MeasurementUnit string `gorm:"size:256;not null;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
