package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ProviderStatus is the admin moderation state of a provider account.
// Only approved providers can publish categories and receive bookings.
type ProviderStatus string

const (
	ProviderPending  ProviderStatus = "pending"
	ProviderApproved ProviderStatus = "approved"
	ProviderRejected ProviderStatus = "rejected"
	ProviderBanned   ProviderStatus = "banned"
)

func (s ProviderStatus) String() string {
	return string(s)
}

func (s ProviderStatus) IsValid() bool {
	switch s {
	case ProviderPending, ProviderApproved, ProviderRejected, ProviderBanned:
		return true
	default:
		return false
	}
}
