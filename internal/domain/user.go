package domain

// User identifies the signed-in customer. A nil *User means the session is
// anonymous.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
