package dto

type CreateCustomerRequest struct {
	Name     string  `json:"name"      validate:"required,min=1,max=200"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Phone    *string `json:"phone"     validate:"omitempty,max=30"`
	BranchID int     `json:"branch_id" validate:"required,min=1"`
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name"      validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Phone    *string `json:"phone"     validate:"omitempty,max=30"`
	BranchID *int    `json:"branch_id" validate:"omitempty,min=1"`
}

type CustomerResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	BranchID  int     `json:"branch_id"`
	CreatedAt string  `json:"created_at"`
}
