package revaluation

import (
	"sort"

	"github.com/moisespsena-go/bid"
	"github.com/pkg/errors"
)

// Model is a minimal attribute storage host. Compose it with Revaluable:
//    type Product struct {
//      *revaluation.Revaluable
//    }
//
//    func NewProduct(attrs map[string]interface{}) *Product {
//      p := &Product{}
//      p.Revaluable = revaluation.New(p, revaluation.NewModel(attrs))
//      return p
//    }
type Model struct {
	ID bid.BID

	attributes map[string]interface{}
	appends    []string
	accessors  map[string]func() (interface{}, error)
	methods    map[string]func(args ...interface{}) (interface{}, error)
}

func NewModel(attributes map[string]interface{}) *Model {
	m := &Model{attributes: map[string]interface{}{}}
	for name, value := range attributes {
		m.attributes[name] = value
	}
	return m
}

// GetAttribute returns the accessor value of name if registered, other else, the stored value.
// Missing attributes returns nil value.
func (m *Model) GetAttribute(name string) (value interface{}, err error) {
	if accessor, ok := m.accessors[name]; ok {
		return accessor()
	}
	return m.attributes[name], nil
}

func (m *Model) SetAttribute(name string, value interface{}) error {
	if name == "" {
		return errors.New("blank attribute name")
	}
	if m.attributes == nil {
		m.attributes = map[string]interface{}{}
	}
	m.attributes[name] = value
	return nil
}

func (m *Model) HasAttribute(name string) (ok bool) {
	_, ok = m.attributes[name]
	return
}

// Attributes returns a copy of stored attributes
func (m *Model) Attributes() map[string]interface{} {
	attrs := make(map[string]interface{}, len(m.attributes))
	for name, value := range m.attributes {
		attrs[name] = value
	}
	return attrs
}

// SetAccessor registers a computed attribute
func (m *Model) SetAccessor(name string, accessor func() (interface{}, error)) *Model {
	if m.accessors == nil {
		m.accessors = map[string]func() (interface{}, error){}
	}
	m.accessors[name] = accessor
	return m
}

// SetMethod registers a method callable by Call
func (m *Model) SetMethod(name string, method func(args ...interface{}) (interface{}, error)) *Model {
	if m.methods == nil {
		m.methods = map[string]func(args ...interface{}) (interface{}, error){}
	}
	m.methods[name] = method
	return m
}

func (m *Model) Call(method string, args ...interface{}) (result interface{}, err error) {
	if f, ok := m.methods[method]; ok {
		return f(args...)
	}
	return nil, errors.Wrapf(ErrNoSuchMethod, "%T.%s", m, method)
}

// Append adds names of virtual attributes to be included on export
func (m *Model) Append(names ...string) {
names:
	for _, name := range names {
		for _, existing := range m.appends {
			if existing == name {
				continue names
			}
		}
		m.appends = append(m.appends, name)
	}
}

func (m *Model) Appends() []string {
	return append([]string{}, m.appends...)
}

// AttributesToMap exports stored attributes and the appended ones. Appended values are
// read using resolve, or GetAttribute if resolve is nil.
func (m *Model) AttributesToMap(resolve AttributeResolver) (result map[string]interface{}, err error) {
	if resolve == nil {
		resolve = m.GetAttribute
	}
	result = m.Attributes()
	if !m.ID.IsZero() {
		result["id"] = m.ID.String()
	}
	for _, name := range m.appends {
		if result[name], err = resolve(name); err != nil {
			return nil, errors.Wrapf(err, "append %q", name)
		}
	}
	return
}

// AttributeNames returns the sorted stored attribute names
func (m *Model) AttributeNames() (names []string) {
	for name := range m.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
