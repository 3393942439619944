package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ckasturi/sift/internal/kyc"
	"github.com/ckasturi/sift/internal/model"
)

func TestStoreEmpty(t *testing.T) {
	s := New()

	assert.Nil(t, s.KYC())
	assert.Nil(t, s.Payments())
	assert.Nil(t, s.Templates())
	assert.True(t, s.LoadedAt().IsZero())
}

func TestStoreReplaces(t *testing.T) {
	s := New()

	first := &kyc.Dataset{Entities: []model.TransactionRecord{{RegistrationID: "1"}}}
	second := &kyc.Dataset{Entities: []model.TransactionRecord{{RegistrationID: "2"}}}

	s.SetKYC(first, "first.xlsx")
	s.SetKYC(second, "second.xlsx")

	assert.Same(t, second, s.KYC())
	assert.Equal(t, "second.xlsx", s.Source())
	assert.False(t, s.LoadedAt().IsZero())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := New()
	data := &kyc.Dataset{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetKYC(data, "data.xlsx")
		}()
		go func() {
			defer wg.Done()
			_ = s.KYC()
		}()
	}
	wg.Wait()

	assert.Same(t, data, s.KYC())
}
