// internal/seed/users.go
package seed

import "github.com/Zevk4/levelup-store/internal/domain/auth"

// Users is the immutable preloaded credential table. Passwords are
// plaintext by design of the source dataset; see DESIGN.md for the
// hashing opt-in.
func Users() []auth.User {
	return []auth.User{
		{
			ID:       1,
			Name:     "Carlos Soto",
			Email:    "admin@levelup.cl",
			Password: "admin123",
			Role:     auth.RoleAdmin,
		},
		{
			ID:       2,
			Name:     "María Paz Rojas",
			Email:    "vendedor@levelup.cl",
			Password: "vendedor123",
			Role:     auth.RoleVendor,
		},
		{
			ID:       3,
			Name:     "Juan Pérez",
			Email:    "cliente@levelup.cl",
			Password: "cliente123",
			Role:     auth.RoleCustomer,
		},
	}
}
