// Package secrets is the authoritative boundary for entity credentials.
// Records and snapshots carry only an opaque reference; the raw value
// stays here and leaves only through Reveal, which callers must pair with
// an audit intent. This replaces the legacy console's habit of shipping
// plaintext passwords to the browser and hiding them with CSS.
package secrets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
)

// ErrUnknownRef is returned when a reference does not resolve.
var ErrUnknownRef = errors.New("secrets: unknown credential reference")

// Masked is the placeholder the presentation layer shows in place of a
// secret. It is constant on purpose: its length leaks nothing.
const Masked = "••••••••"

// Vault maps opaque references to raw credential values for one session.
type Vault struct {
	mu     sync.Mutex
	values map[string]string
}

// NewVault returns an empty vault.
func NewVault() *Vault {
	return &Vault{values: make(map[string]string)}
}

// Ref builds the opaque reference for an entity's credential.
func Ref(kind model.EntityKind, id int) string {
	return fmt.Sprintf("cred:%s:%d", kind, id)
}

// Put stores a raw secret under the given reference, replacing any
// previous value.
func (v *Vault) Put(ref, secret string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[ref] = secret
}

// Reveal returns the raw secret for ref. Callers are responsible for
// emitting the matching audit intent before handing the value out.
func (v *Vault) Reveal(ref string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	secret, ok := v.values[ref]
	if !ok {
		return "", ErrUnknownRef
	}
	return secret, nil
}
