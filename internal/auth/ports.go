package auth

type AuthServiceAPI interface {
	CreateUser(user User) (*User, error)
	GetUser(email string) (*User, error)
	GetUserByID(id int) (*User, error)
	GetAllUsers() ([]User, error)
	UpdateRole(id int, role string) (*User, error)
}

var _ AuthServiceAPI = (*AuthService)(nil)
