package admin

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/plotbay/plotbay-backend/internal/domain/event"
)

const PasswordCostFactor = 10

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// Admin is the single account role this system provisions. The record is
// created once by registration and never mutated or deleted here.
type Admin struct {
	event.Recorder
	id           ID
	name         string
	email        string
	mobile       string
	passHash     []byte
	imageURL     string
	isActive     bool
	isDeleted    bool
	registeredAt time.Time
}

type RegisterArgs struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	ImageURL string
}

// Register builds a new active admin, hashing the password so the plaintext
// never leaves this constructor, and records the AdminRegistered event.
func Register(args RegisterArgs) (*Admin, error) {
	passHash, err := NewPasswordHash(args.Password)
	if err != nil {
		return nil, err
	}

	a := &Admin{
		id:           NewID(),
		name:         args.Name,
		email:        args.Email,
		mobile:       args.Mobile,
		passHash:     passHash,
		imageURL:     args.ImageURL,
		isActive:     true,
		isDeleted:    false,
		registeredAt: time.Now().UTC(),
	}

	a.AddEvent(&AdminRegistered{
		Header:  event.NewEventHeader(),
		AdminID: a.id.UUID(),
		Name:    a.name,
		Email:   a.email,
	})

	return a, nil
}

type RehydrateArgs struct {
	ID           ID
	Name         string
	Email        string
	Mobile       string
	PassHash     []byte
	ImageURL     string
	IsActive     bool
	IsDeleted    bool
	RegisteredAt time.Time
}

func Rehydrate(p RehydrateArgs) *Admin {
	return &Admin{
		id:           p.ID,
		name:         p.Name,
		email:        p.Email,
		mobile:       p.Mobile,
		passHash:     p.PassHash,
		imageURL:     p.ImageURL,
		isActive:     p.IsActive,
		isDeleted:    p.IsDeleted,
		registeredAt: p.RegisteredAt,
	}
}

func (a *Admin) ID() ID {
	if a == nil {
		return ID(uuid.Nil)
	}
	return a.id
}

func (a *Admin) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

func (a *Admin) Email() string {
	if a == nil {
		return ""
	}
	return a.email
}

func (a *Admin) Mobile() string {
	if a == nil {
		return ""
	}
	return a.mobile
}

func (a *Admin) PassHash() []byte {
	if a == nil {
		return nil
	}
	return a.passHash
}

func (a *Admin) ImageURL() string {
	if a == nil {
		return ""
	}
	return a.imageURL
}

func (a *Admin) IsActive() bool {
	if a == nil {
		return false
	}
	return a.isActive
}

func (a *Admin) IsDeleted() bool {
	if a == nil {
		return false
	}
	return a.isDeleted
}

func (a *Admin) RegisteredAt() time.Time {
	if a == nil {
		return time.Time{}
	}
	return a.registeredAt
}

func (a *Admin) ComparePassword(password string) error {
	if a == nil {
		return errors.New("admin is nil")
	}
	return bcrypt.CompareHashAndPassword(a.passHash, []byte(password))
}

func NewPasswordHash(password string) ([]byte, error) {
	passhash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCostFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password hash from password: %w", err)
	}
	return passhash, nil
}
