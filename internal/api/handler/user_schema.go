package handler

// createUserRequest is the payload for POST /admin/users. Only
// administrative roles can be provisioned through this endpoint.
type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN SUPER_ADMIN"`
	Phone    string `json:"phone"    validate:"omitempty"`
}

// messageResponse is the envelope for operations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}
