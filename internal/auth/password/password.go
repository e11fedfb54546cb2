package password

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a cost fixed at construction. The cost is
// injectable so tests can run at bcrypt.MinCost instead of the production
// work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted bcrypt digest. Two calls with the same plaintext
// yield different digests; the salt and cost are embedded in the output.
func (h *Hasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	return string(bytes), err
}

// Verify compares a plaintext candidate against a stored digest.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
