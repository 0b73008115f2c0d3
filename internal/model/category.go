package model

// Category groups products
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryRequest is used for creating and renaming categories
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
