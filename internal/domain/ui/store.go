// internal/domain/ui/store.go
package ui

import "sync"

// ModalStore coordinates the login overlay visibility between components
// that can't reach each other directly. Nothing but on/off.
type ModalStore struct {
	mu        sync.Mutex
	loginOpen bool
}

// NewModalStore creates the modal store with everything closed.
func NewModalStore() *ModalStore {
	return &ModalStore{}
}

// OpenLogin shows the login overlay.
func (s *ModalStore) OpenLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginOpen = true
}

// CloseLogin hides the login overlay.
func (s *ModalStore) CloseLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginOpen = false
}

// LoginOpen reports whether the login overlay is visible.
func (s *ModalStore) LoginOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginOpen
}
