package mocks

import (
	"context"
	"io"
	"sync"
	"testing"
)

type StoredObject struct {
	Key         string
	ContentType string
	Data        []byte
}

// Storage is an in-memory object store recording uploads and deletes, so
// tests can assert compensation behavior after a failed registration.
type Storage struct {
	mu        sync.Mutex
	objects   map[string]StoredObject
	deleted   []string
	uploadErr error
	deleteErr error
}

func NewStorage() *Storage {
	return &Storage{
		objects: make(map[string]StoredObject),
	}
}

func (s *Storage) FailUploadWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploadErr = err
}

func (s *Storage) FailDeleteWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteErr = err
}

func (s *Storage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploadErr != nil {
		return s.uploadErr
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	s.objects[key] = StoredObject{Key: key, ContentType: contentType, Data: data}
	return nil
}

func (s *Storage) DeleteFile(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleted = append(s.deleted, key)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *Storage) DeletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.deleted...)
}

func (s *Storage) AssertObjectExists(t *testing.T, key string) {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		t.Fatalf("expected object with key %s to exist", key)
	}
}

func (s *Storage) AssertEmpty(t *testing.T) {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.objects) > 0 {
		t.Fatalf("expected no stored objects, got %d", len(s.objects))
	}
}

func (s *Storage) AssertDeleted(t *testing.T, key string) {
	t.Helper()

	for _, deleted := range s.DeletedKeys() {
		if deleted == key {
			return
		}
	}
	t.Fatalf("expected object with key %s to be deleted", key)
}

func (s *Storage) AssertNothingDeleted(t *testing.T) {
	t.Helper()

	if deleted := s.DeletedKeys(); len(deleted) > 0 {
		t.Fatalf("expected no deletes, got %v", deleted)
	}
}
