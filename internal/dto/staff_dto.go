package dto

type CreateStaffRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	BranchID *int   `json:"branch_id"`
}

type UpdateStaffRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=8"`
	BranchID *int    `json:"branch_id"`
}
