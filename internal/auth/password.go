package auth

import (
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt. A semaphore caps how
// many hashes run at once: bcrypt is CPU-bound and an unthrottled burst of
// registrations would otherwise starve every other request.
type Hasher struct {
	cost int
	sem  chan struct{}
}

// NewHasher builds a Hasher with the given bcrypt cost and concurrency cap.
// Zero values fall back to cost 12 and NumCPU workers.
func NewHasher(cost, workers int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Hasher{
		cost: cost,
		sem:  make(chan struct{}, workers),
	}
}

// Hash returns the bcrypt hash of plaintext. The salt is random per call,
// so hashing the same password twice yields different values.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password")
	}
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hashes verify as false, they never error out.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if plaintext == "" || hash == "" {
		return false
	}
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
