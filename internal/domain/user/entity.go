package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id             uuid.UUID
	role           Role
	email          Email
	passwordHash   string
	contactNumber  ContactNumber
	fullName       string
	address        string
	shopName       string
	shopAddress    string
	providerStatus ProviderStatus
	isAvailable    bool
	banned         bool
	createdAt      time.Time
}

// NewCustomer builds a customer account. Customers have no shop fields
// and no moderation state.
func NewCustomer(email Email, passwordHash string, contact ContactNumber, fullName, address string) *User {
	return &User{
		id:            uuid.New(),
		role:          RoleCustomer,
		email:         email,
		passwordHash:  passwordHash,
		contactNumber: contact,
		fullName:      fullName,
		address:       address,
	}
}

// NewProvider builds a provider account. Providers start pending until an
// admin approves them, and open for business once approved.
func NewProvider(email Email, passwordHash string, contact ContactNumber, shopName, shopAddress string) *User {
	return &User{
		id:             uuid.New(),
		role:           RoleProvider,
		email:          email,
		passwordHash:   passwordHash,
		contactNumber:  contact,
		shopName:       shopName,
		shopAddress:    shopAddress,
		providerStatus: ProviderPending,
		isAvailable:    true,
	}
}

func Reconstruct(
	id uuid.UUID,
	role Role,
	email Email,
	passwordHash string,
	contact ContactNumber,
	fullName, address, shopName, shopAddress string,
	providerStatus ProviderStatus,
	isAvailable, banned bool,
	createdAt time.Time,
) *User {
	return &User{
		id:             id,
		role:           role,
		email:          email,
		passwordHash:   passwordHash,
		contactNumber:  contact,
		fullName:       fullName,
		address:        address,
		shopName:       shopName,
		shopAddress:    shopAddress,
		providerStatus: providerStatus,
		isAvailable:    isAvailable,
		banned:         banned,
		createdAt:      createdAt,
	}
}

func (u *User) ID() uuid.UUID                  { return u.id }
func (u *User) Role() Role                     { return u.role }
func (u *User) Email() Email                   { return u.email }
func (u *User) PasswordHash() string           { return u.passwordHash }
func (u *User) ContactNumber() ContactNumber   { return u.contactNumber }
func (u *User) FullName() string               { return u.fullName }
func (u *User) Address() string                { return u.address }
func (u *User) ShopName() string               { return u.shopName }
func (u *User) ShopAddress() string            { return u.shopAddress }
func (u *User) ProviderStatus() ProviderStatus { return u.providerStatus }
func (u *User) IsAvailable() bool              { return u.isAvailable }
func (u *User) Banned() bool                   { return u.banned }
func (u *User) CreatedAt() time.Time           { return u.createdAt }

// CanReceiveBookings reports whether the account may be booked against.
func (u *User) CanReceiveBookings() bool {
	return u.role == RoleProvider &&
		u.providerStatus == ProviderApproved &&
		u.isAvailable &&
		!u.banned
}

func (u *User) SetProviderStatus(s ProviderStatus) error {
	if u.role != RoleProvider {
		return ErrNotProvider
	}
	if !s.IsValid() {
		return ErrInvalidProviderStatus
	}
	u.providerStatus = s
	return nil
}

func (u *User) SetAvailability(available bool) error {
	if u.role != RoleProvider {
		return ErrNotProvider
	}
	u.isAvailable = available
	return nil
}

func (u *User) Ban() {
	u.banned = true
	if u.role == RoleProvider {
		u.providerStatus = ProviderBanned
	}
}

func (u *User) Unban() {
	u.banned = false
	if u.role == RoleProvider && u.providerStatus == ProviderBanned {
		u.providerStatus = ProviderApproved
	}
}

func (u *User) UpdateProfile(fullName, address string, contact ContactNumber) {
	u.fullName = fullName
	u.address = address
	u.contactNumber = contact
}

func (u *User) UpdateShop(shopName, shopAddress string, contact ContactNumber) {
	u.shopName = shopName
	u.shopAddress = shopAddress
	u.contactNumber = contact
}
