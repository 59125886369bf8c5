package memcache

import (
	"sync"
	"time"
)

type OtpStore interface {
	Set(email string, code string, ttl time.Duration)

	// Consume returns true if code matches the unexpired entry for email,
	// and removes the entry (single-use). Expired or missing entries fail.
	Consume(email string, code string) bool
}

type entry struct {
	code      string
	expiresAt time.Time
}

// OtpCodes is a demo-grade in-memory store keyed by account email.
type OtpCodes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewOtpCodes() *OtpCodes {
	return &OtpCodes{
		data: make(map[string]entry),
	}
}

func (s *OtpCodes) Set(email string, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[email] = entry{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *OtpCodes) Consume(email string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[email]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, email)
		return false
	}
	if e.code != code {
		return false
	}
	delete(s.data, email) // single-use
	return true
}
