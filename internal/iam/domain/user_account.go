package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// UserType is the enumerated role of an account.
type UserType string

const (
	UserClient       UserType = "CLIENT"
	UserOrganization UserType = "ORGANIZATION"
)

// ParseUserType falls back to CLIENT on unknown wire values.
func ParseUserType(raw string) UserType {
	switch UserType(raw) {
	case UserClient, UserOrganization:
		return UserType(raw)
	default:
		return UserClient
	}
}

// Credentials is the email/password pair an account signs in with.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the pair is submittable. Uniqueness of the email is
// enforced by the backend, not locally.
func (c Credentials) Validate() error {
	if !strings.Contains(c.Email, "@") {
		return shared.NewValidationError("email", "email must be a valid address")
	}
	if c.Password == "" {
		return shared.NewValidationError("password", "password is required")
	}
	return nil
}

// UserAccount is the credential-bearing aggregate, optionally linked to
// a Person by id.
type UserAccount struct {
	id          shared.ID
	email       string
	password    string
	userType    UserType
	createdAt   time.Time
	lastLoginAt *time.Time
	personID    shared.ID
}

// UserAccountConfig carries the named, defaulted construction fields.
type UserAccountConfig struct {
	ID          shared.ID
	Credentials Credentials
	UserType    UserType
	CreatedAt   time.Time
	LastLoginAt *time.Time
	PersonID    shared.ID
}

// NewUserAccount validates and builds an account.
func NewUserAccount(cfg UserAccountConfig) (*UserAccount, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}
	if cfg.UserType == "" {
		cfg.UserType = UserClient
	}
	switch cfg.UserType {
	case UserClient, UserOrganization:
	default:
		return nil, shared.NewValidationError("userType", "unknown user type "+string(cfg.UserType))
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now()
	}
	return &UserAccount{
		id:          cfg.ID,
		email:       cfg.Credentials.Email,
		password:    cfg.Credentials.Password,
		userType:    cfg.UserType,
		createdAt:   cfg.CreatedAt,
		lastLoginAt: cfg.LastLoginAt,
		personID:    cfg.PersonID,
	}, nil
}

func (u *UserAccount) ID() shared.ID           { return u.id }
func (u *UserAccount) Email() string           { return u.email }
func (u *UserAccount) UserType() UserType      { return u.userType }
func (u *UserAccount) CreatedAt() time.Time    { return u.createdAt }
func (u *UserAccount) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *UserAccount) PersonID() shared.ID     { return u.personID }

// RecordLogin stamps the last successful sign-in.
func (u *UserAccount) RecordLogin(at time.Time) {
	u.lastLoginAt = &at
}

// LinkPerson attaches the account to a persisted person.
func (u *UserAccount) LinkPerson(personID shared.ID) error {
	if personID.IsNil() {
		return shared.NewValidationError("personId", "person id must be assigned before linking")
	}
	u.personID = personID
	return nil
}

type userAccountJSON struct {
	ID          shared.ID  `json:"id"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	UserType    UserType   `json:"userType"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	PersonID    shared.ID  `json:"personId"`
}

// MarshalJSON emits the flat, backend-shaped record. The mock backend
// stores the password in plain text exactly like the original did; real
// deployments keep credentials out of this payload.
func (u *UserAccount) MarshalJSON() ([]byte, error) {
	return json.Marshal(userAccountJSON{
		ID:          u.id,
		Email:       u.email,
		Password:    u.password,
		UserType:    u.userType,
		CreatedAt:   u.createdAt,
		LastLoginAt: u.lastLoginAt,
		PersonID:    u.personID,
	})
}
