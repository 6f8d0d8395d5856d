package revaluation

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

const IdentityValuator = "identity"

// ValuatorRegistrator resolves valuator identifiers into valuator types
type ValuatorRegistrator struct {
	data map[string]ValuatorType
	mu   sync.RWMutex
}

func (r *ValuatorRegistrator) Register(name string, typ ValuatorType) *ValuatorRegistrator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		r.data = map[string]ValuatorType{}
	}
	r.data[name] = typ
	return r
}

func (r *ValuatorRegistrator) Get(name string) (typ ValuatorType) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data != nil {
		typ = r.data[name]
	}
	return
}

func (r *ValuatorRegistrator) Has(name string) (ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data != nil {
		_, ok = r.data[name]
	}
	return
}

// Resolve returns the valuator type of name or ErrUnknownValuator
func (r *ValuatorRegistrator) Resolve(name string) (ValuatorType, error) {
	if typ := r.Get(name); typ != nil {
		return typ, nil
	}
	return nil, errors.Wrapf(ErrUnknownValuator, "%q", name)
}

func (r *ValuatorRegistrator) Names() (names []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

var valuators = (&ValuatorRegistrator{}).Register(IdentityValuator, IdentityType{})

// Valuators returns the default valuator registry
func Valuators() *ValuatorRegistrator {
	return valuators
}

// Register registers the valuator type into default registry
func Register(name string, typ ValuatorType) {
	valuators.Register(name, typ)
}
