package catalog

type IngredientImport struct {
	Name            string `json:"name" validate:"required,max=256"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=256"`
}

type TagImport struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=256,slug"`
}
