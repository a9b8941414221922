package client

type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	IsDefault     bool   `json:"isDefault"`
}

type UpdateClientRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	IsDefault     *bool   `json:"isDefault"`
}

type GetClientsFilterRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

type ClientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	IsDefault     bool   `json:"isDefault"`
}
