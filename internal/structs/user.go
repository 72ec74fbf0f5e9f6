package structs

const (
	RoleCustomer = "customer"
	RoleFarmer   = "farmer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Address   string `json:"address,omitempty"`
	Contact   string `json:"contact,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}

// Session is the record kept per signed-in user: the user snapshot plus
// the upstream bearer token used when proxying calls on their behalf.
type Session struct {
	User          User   `json:"user"`
	UpstreamToken string `json:"upstream_token"`
}

func (s Session) IsCustomer() bool { return s.User.Role == RoleCustomer }
func (s Session) IsFarmer() bool   { return s.User.Role == RoleFarmer }
func (s Session) IsAdmin() bool    { return s.User.Role == RoleAdmin }

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type UpdateUserRole struct {
	Role string `json:"role" binding:"required"`
}
