package model

// Supplier represents a goods supplier
type Supplier struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Contact *string `json:"contact"`
}

// CreateSupplierRequest is used for creating a supplier
type CreateSupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Contact *string `json:"contact"`
}

// UpdateSupplierRequest carries a partial supplier update
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Contact *string `json:"contact,omitempty"`
}
