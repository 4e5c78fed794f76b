package dto

type CreateBranchRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=150"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// UpdateBranchRequest uses pointer fields: only the fields present in the
// patch overwrite the existing record.
type UpdateBranchRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=150"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

type BranchResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	CreatedAt string  `json:"created_at"`
}
