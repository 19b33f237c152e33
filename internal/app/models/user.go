package models

type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
	FullName string `json:"full_name" bson:"fullName,omitempty"`
	Role     string `json:"role" bson:"role,omitempty"`
	Active   bool   `json:"active" bson:"active"`
}
