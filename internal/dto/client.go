package dto

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Code     string `json:"code" binding:"required,notblank,max=50"`
	Name     string `json:"name" binding:"required,notblank,max=200"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"max=30"`
	Address  string `json:"address"`
	IsActive *bool  `json:"isActive"`
}

// UpdateClientRequest replaces a client. Version must match the stored record.
type UpdateClientRequest struct {
	CreateClientRequest
	Version int `json:"version" binding:"required,min=1"`
}
