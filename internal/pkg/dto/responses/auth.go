package responses

type Login struct {
	Token string `json:"token"`
}

type UserProfile struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
