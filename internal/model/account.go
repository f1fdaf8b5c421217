package model

// AccountID uniquely identifies a member account
type AccountID int

// Account is one entry in the static member directory.
// Email is the login key. Password is stored as-is in the data file;
// entries may alternatively hold a bcrypt hash (see directory.Authenticate).
type Account struct {
	ID       AccountID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	FullName string    `json:"fullname"`
	Image    string    `json:"image"`
	Role     string    `json:"role"`
}
