// internal/domain/auth/entity.go
package auth

// User roles. Registration always assigns RoleCustomer; the admin panel
// is gated on RoleAdmin.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// User is a credential record. Records come from two disjoint sources:
// the immutable preloaded table and the mutable registered table
// persisted under the "users" key. Users are never mutated or deleted.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Identity is the session-visible projection of a User, with the
// password stripped. It is what gets persisted under "loggedInUser".
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Result is the outcome of a login or registration attempt. Business
// failures (bad credentials, duplicate email) are Results, not errors.
type Result struct {
	Success bool      `json:"success"`
	User    *Identity `json:"user,omitempty"`
	Message string    `json:"message"`
}
