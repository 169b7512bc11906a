package categories

type CreateCategoryRequestDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

type ListCategoriesResponseDTO struct {
	Categories []*Category `json:"categories"`
}
