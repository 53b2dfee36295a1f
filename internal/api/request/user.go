package request

// CreateUser is the POST /api/user body.
type CreateUser struct {
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password"`
}
