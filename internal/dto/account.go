package dto

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Type     string   `json:"type" validate:"required,account_type"`
	Balance  *float64 `json:"balance,omitempty" validate:"omitempty"`
	Currency string   `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateAccountRequest represents a partial account update. Provided
// fields are applied as-is; the enumerations are not re-checked on
// update, mirroring the upstream API contract.
type UpdateAccountRequest struct {
	Name     *string  `json:"name,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Balance  *float64 `json:"balance,omitempty"`
	Currency *string  `json:"currency,omitempty"`
}

// HasChanges reports whether the patch carries at least one field
func (r *UpdateAccountRequest) HasChanges() bool {
	return r.Name != nil || r.Type != nil || r.Balance != nil || r.Currency != nil
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
