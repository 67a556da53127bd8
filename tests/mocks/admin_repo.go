package mocks

import (
	"context"
	"sync"
	"testing"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/internal/domain/event"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

// AdminRepo is an in-memory stand-in enforcing the same uniqueness and
// conflict shape as the postgres implementation.
type AdminRepo struct {
	mu       sync.Mutex
	byEmail  map[string]*admin.Admin
	byMobile map[string]*admin.Admin
	events   []event.Event
	saveErr  error
}

func NewAdminRepo() *AdminRepo {
	return &AdminRepo{
		byEmail:  make(map[string]*admin.Admin),
		byMobile: make(map[string]*admin.Admin),
	}
}

// FailSaveWith makes every subsequent SaveAdmin return err.
func (r *AdminRepo) FailSaveWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveErr = err
}

func (r *AdminRepo) SaveAdmin(ctx context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}

	_, emailTaken := r.byEmail[a.Email()]
	_, mobileTaken := r.byMobile[a.Mobile()]
	if emailTaken || mobileTaken {
		fields := make(map[string][]string, 2)
		if emailTaken {
			fields[admin.FieldEmail] = []string{"Email already exists"}
		}
		if mobileTaken {
			fields[admin.FieldMobile] = []string{"Mobile number already exists"}
		}
		return errorx.NewConflict("admin already exists", fields)
	}

	r.byEmail[a.Email()] = a
	r.byMobile[a.Mobile()] = a
	r.events = append(r.events, a.GetUncommittedEvents()...)
	a.MarkEventsAsCommitted()
	return nil
}

func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.byEmail[email]; ok {
		return a, nil
	}
	return nil, errorx.NewNotFound("admin not found")
}

func (r *AdminRepo) SeedAdmin(t *testing.T, a *admin.Admin) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email()]; exists {
		t.Fatalf("admin with email %s already exists", a.Email())
	}
	if _, exists := r.byMobile[a.Mobile()]; exists {
		t.Fatalf("admin with mobile %s already exists", a.Mobile())
	}

	r.byEmail[a.Email()] = a
	r.byMobile[a.Mobile()] = a
}

func (r *AdminRepo) PublishedEvents() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]event.Event{}, r.events...)
}

func (r *AdminRepo) AssertAdminSaved(t *testing.T, email string) *admin.Admin {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byEmail[email]
	if !ok {
		t.Fatalf("expected admin with email %s to be saved", email)
	}
	return a
}

func (r *AdminRepo) AssertAdminNotSaved(t *testing.T, email string) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		t.Fatalf("expected admin with email %s not to be saved", email)
	}
}
