package domain

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Password is stored in clear for demonstration purposes only; credential
	// checks go through store.CredentialVerifier so a hashed scheme can be
	// substituted without changing the auth contract.
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}
