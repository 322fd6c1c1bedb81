package domain

// Role labels as persisted in the roles array of a user record.
const (
	LabelUser  = "ROLE_USER"
	LabelAdmin = "ROLE_ADMIN"
)

// RoleSet is a bitset over the closed {USER, ADMIN} role domain. A bitset
// keeps membership checks and add/remove branch-free and rules out role
// values outside the domain at compile time.
type RoleSet uint8

const (
	RoleUser RoleSet = 1 << iota
	RoleAdmin
)

// Has reports whether every role in r is present in the set.
func (s RoleSet) Has(r RoleSet) bool {
	return s&r == r
}

// IsAdmin reports whether the set grants administrator rights.
func (s RoleSet) IsAdmin() bool {
	return s.Has(RoleAdmin)
}

// With returns the set with r added. RoleUser is always retained: a role
// set is never empty.
func (s RoleSet) With(r RoleSet) RoleSet {
	return s | r | RoleUser
}

// Without returns the set with r removed. RoleUser cannot be removed, so
// the result is never empty.
func (s RoleSet) Without(r RoleSet) RoleSet {
	return (s &^ r) | RoleUser
}

// Labels renders the set as its persisted string labels, USER first.
func (s RoleSet) Labels() []string {
	labels := make([]string, 0, 2)
	if s.Has(RoleUser) {
		labels = append(labels, LabelUser)
	}
	if s.Has(RoleAdmin) {
		labels = append(labels, LabelAdmin)
	}
	return labels
}

// RolesFromLabels rebuilds a RoleSet from persisted labels. Unknown labels
// are ignored; the result always contains RoleUser.
func RolesFromLabels(labels []string) RoleSet {
	s := RoleUser
	for _, l := range labels {
		if l == LabelAdmin {
			s |= RoleAdmin
		}
	}
	return s
}

// User models an account in the system. The ID is a random 128-bit UUID
// assigned at sign-up, never sequential.
type User struct {
	ID           string  `json:"user_id"`
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	IsActive     bool    `json:"is_active"`
	Roles        RoleSet `json:"-"`
}
