package dto

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required" validate:"required,notblank,max=50"`
}

type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
