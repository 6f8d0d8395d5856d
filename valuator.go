package revaluation

type (
	// Valuator wraps the raw stored value of one attribute access
	Valuator interface {
		Raw() interface{}
		DefaultFormat() interface{}
	}

	// ValuatorType is the class level side of a valuator: it builds instances
	// and converts arbitrary input into the storable primitive.
	ValuatorType interface {
		New(raw interface{}, attribute string, owner interface{}) Valuator
		ToStorable(value interface{}) (storable interface{}, err error)
	}
)

// Base can be embedded by valuators to hold the construction arguments
type Base struct {
	raw       interface{}
	attribute string
	owner     interface{}
}

func NewBase(raw interface{}, attribute string, owner interface{}) Base {
	return Base{raw, attribute, owner}
}

func (b Base) Raw() interface{} {
	return b.raw
}

func (b Base) Attribute() string {
	return b.attribute
}

func (b Base) Owner() interface{} {
	return b.owner
}

type SimpleValuatorType struct {
	NewFunc        func(raw interface{}, attribute string, owner interface{}) Valuator
	ToStorableFunc func(value interface{}) (interface{}, error)
}

func (typ *SimpleValuatorType) New(raw interface{}, attribute string, owner interface{}) Valuator {
	return typ.NewFunc(raw, attribute, owner)
}

func (typ *SimpleValuatorType) ToStorable(value interface{}) (interface{}, error) {
	if typ.ToStorableFunc == nil {
		return value, nil
	}
	return typ.ToStorableFunc(value)
}

// Identity is a valuator that exposes the raw value unchanged
type Identity struct {
	Base
}

func (v *Identity) DefaultFormat() interface{} {
	return v.Raw()
}

// IdentityType builds Identity valuators. Storable conversion is a no-op.
type IdentityType struct{}

func (IdentityType) New(raw interface{}, attribute string, owner interface{}) Valuator {
	return &Identity{NewBase(raw, attribute, owner)}
}

func (IdentityType) ToStorable(value interface{}) (interface{}, error) {
	return value, nil
}
