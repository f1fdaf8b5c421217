package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TopUpRequest is the request body for submitting a top-up
type TopUpRequest struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
}
