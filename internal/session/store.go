// Package session holds the datasets loaded during one run so that the
// aggregation stages can share them without re-reading the source files.
package session

import (
	"sync"
	"time"

	"github.com/ckasturi/sift/internal/classifier"
	"github.com/ckasturi/sift/internal/kyc"
	"github.com/ckasturi/sift/internal/model"
)

// Store is a thread-safe holder for the most recently loaded datasets.
// Each setter replaces the previous dataset of its kind.
type Store struct {
	mu sync.RWMutex

	kycData    *kyc.Dataset
	payments   []model.Payment
	templates  []classifier.ProcessedTemplate
	loadedAt   time.Time
	sourcePath string
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// SetKYC replaces the stored registration dataset.
func (s *Store) SetKYC(data *kyc.Dataset, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kycData = data
	s.sourcePath = source
	s.loadedAt = time.Now()
}

// KYC returns the stored registration dataset, or nil if none was loaded.
func (s *Store) KYC() *kyc.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kycData
}

// SetPayments replaces the stored payment set.
func (s *Store) SetPayments(payments []model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = payments
	s.loadedAt = time.Now()
}

// Payments returns the stored payment set.
func (s *Store) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments
}

// SetTemplates replaces the stored classification results.
func (s *Store) SetTemplates(templates []classifier.ProcessedTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = templates
	s.loadedAt = time.Now()
}

// Templates returns the stored classification results.
func (s *Store) Templates() []classifier.ProcessedTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates
}

// Source returns the path of the last loaded registration dataset.
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourcePath
}

// LoadedAt returns when the store was last updated; the zero time means
// nothing has been loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
