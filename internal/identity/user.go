// ABOUTME: User type and the built-in resident roster
// ABOUTME: Defines roles and the deterministic six-user seed used on cold start

package identity

// Role constants for user roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered resident of the community.
// Identity is immutable after creation; switching who is logged in
// goes through the registry's active-user pointer.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HouseNumber int    `json:"houseNumber"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// seedRoster returns the fixed built-in roster used when no persisted
// roster exists. Exactly one admin, five residents, deterministic ids.
func seedRoster() []*User {
	return []*User{
		{ID: "user1", Name: "Admin", HouseNumber: 0, AvatarURL: "https://i.pravatar.cc/150?u=admin", Role: RoleAdmin},
		{ID: "user2", Name: "Carlos Pérez", HouseNumber: 12, AvatarURL: "https://i.pravatar.cc/150?u=carlos", Role: RoleUser},
		{ID: "user3", Name: "Ana Gómez", HouseNumber: 25, AvatarURL: "https://i.pravatar.cc/150?u=ana", Role: RoleUser},
		{ID: "user4", Name: "Luisa Torres", HouseNumber: 8, AvatarURL: "https://i.pravatar.cc/150?u=luisa", Role: RoleUser},
		{ID: "user5", Name: "Miguel Hernández", HouseNumber: 3, AvatarURL: "https://i.pravatar.cc/150?u=miguel", Role: RoleUser},
		{ID: "user6", Name: "Sofía Ramírez", HouseNumber: 15, AvatarURL: "https://i.pravatar.cc/150?u=sofia", Role: RoleUser},
	}
}
