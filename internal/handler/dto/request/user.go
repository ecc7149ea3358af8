package request

type RegisterCustomerRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	ContactNumber string `json:"contact_number" binding:"required"`
	FullName      string `json:"full_name" binding:"required"`
	Address       string `json:"address"`
}

type RegisterProviderRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	ContactNumber string `json:"contact_number" binding:"required"`
	ShopName      string `json:"shop_name" binding:"required"`
	ShopAddress   string `json:"shop_address" binding:"required"`
}

type UpdateProfileRequest struct {
	ContactNumber string `json:"contact_number" binding:"required"`
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	ShopName      string `json:"shop_name"`
	ShopAddress   string `json:"shop_address"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
