package user

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// User is the aggregate root for system users.
//
// The password is kept only as a bcrypt hash. loginID is fixed at creation;
// name, email and password can change later.
type User struct {
	id           *kernel.UserID
	name         string
	email        string
	loginID      string
	passwordHash string
	auditInfo    kernel.AuditInfo

	isConstructed bool
}

// NewUser validates the input and creates a user without id.
//
// Parameters:
//   - ctx: request context; its actor stamps the audit information
//   - name, email, loginID, password: must not be blank
//
// Returns:
//   - *User: the created user
//   - error: joined ValueIsRequiredError for every blank field, or a hashing error
func NewUser(ctx kernel.DomainContext, name, email, loginID, password string) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setLoginID(loginID),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}

	u.auditInfo = kernel.NewAuditInfo(ctx.Actor())
	return u, nil
}

// RestoreUser rebuilds a user read from storage. passwordHash must already be a
// bcrypt hash.
func RestoreUser(
	id kernel.UserID,
	name, email, loginID, passwordHash string,
	auditInfo kernel.AuditInfo,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            &id,
		name:          name,
		email:         email,
		loginID:       loginID,
		passwordHash:  passwordHash,
		auditInfo:     auditInfo,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was built by NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user id and whether it has been assigned.
func (u *User) ID() (kernel.UserID, bool) {
	if u.id == nil {
		return kernel.UserID{}, false
	}
	return *u.id, true
}

// AssignID sets the id of a new user on first save.
func (u *User) AssignID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id != nil {
		return ErrUserIDAlreadyAssigned
	}
	u.id = &id
	return nil
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) LoginID() string {
	return u.loginID
}

// PasswordHash returns the stored bcrypt hash. Only repositories should need it.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) AuditInfo() kernel.AuditInfo {
	return u.auditInfo
}

// Update changes the profile of the user. Nothing changes if either value is blank.
func (u *User) Update(ctx kernel.DomainContext, name, email string) error {
	updated := *u
	if err := errors.Join(
		updated.setName(name),
		updated.setEmail(email),
	); err != nil {
		return err
	}

	u.name = updated.name
	u.email = updated.email
	u.auditInfo = u.auditInfo.Update(ctx.Actor())
	return nil
}

// ChangePassword replaces the stored hash with a hash of password.
func (u *User) ChangePassword(ctx kernel.DomainContext, password string) error {
	if err := u.setPassword(password); err != nil {
		return err
	}
	u.auditInfo = u.auditInfo.Update(ctx.Actor())
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setLoginID(loginID string) error {
	if strings.TrimSpace(loginID) == "" {
		return errs.NewValueIsRequiredError("login id")
	}
	u.loginID = loginID
	return nil
}

func (u *User) setPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", fmt.Errorf("hash password: %w", err))
	}
	u.passwordHash = string(hash)
	return nil
}
