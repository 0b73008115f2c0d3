package model

// Product represents a stocked item
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// ProductRequest is used for creating and fully updating a product.
// Pointers distinguish an absent field from a zero value.
type ProductRequest struct {
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
	Stock      *int     `json:"stock" binding:"required,gte=0"`
	CategoryID *int     `json:"category_id" binding:"required"`
}
