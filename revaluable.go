// Package revaluation intercepts model attribute access, exposing stored raw values
// as valuators on read and converting values into storable primitives on write.
package revaluation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/moisespsena-go/tracederror"
	"github.com/pkg/errors"
)

const RawPrefix = "raw_"

// Revaluable intercepts attribute reads and writes of host, routing the declared
// revaluable attributes through valuators.
type Revaluable struct {
	// Error accumulates the errors of fluent Set calls
	Error error

	owner            interface{}
	host             Host
	config           Config
	registry         *ValuatorRegistrator
	prefix           string
	appendRevaluated bool
	attributes       map[string]string
	mutators         map[string]Mutator
	accessors        map[string]accessor
	revaluated       []string
}

// New creates the interceptor of host. Owner is the model value passed to valuators and
// the source of declarations (see RevaluableDeclarer, RevaluateMutatorsDeclarer,
// RevaluablePrefixDeclarer and AppendRevaluatedDeclarer).
func New(owner interface{}, host Host, opts ...Opt) *Revaluable {
	if host == nil {
		host = NewModel(nil)
	}
	r := &Revaluable{
		owner:    owner,
		host:     host,
		config:   GetConfig(),
		registry: valuators,
	}
	for _, opt := range opts {
		r = opt.Apply(r)
	}
	if r.owner == nil {
		r.owner = r
	}
	r.setup()
	return r
}

func (r *Revaluable) setup() {
	r.prefix = r.config.Prefix
	if d, ok := r.owner.(RevaluablePrefixDeclarer); ok {
		if prefix := d.RevaluableAttributePrefix(); prefix != "" {
			r.prefix = prefix
		}
	}
	if r.prefix == "" {
		r.prefix = DefaultPrefix
	}

	r.appendRevaluated = r.config.AppendRevaluated == nil || *r.config.AppendRevaluated
	if d, ok := r.owner.(AppendRevaluatedDeclarer); ok {
		r.appendRevaluated = d.AppendRevaluated()
	}

	var declared interface{}
	if d, ok := r.owner.(RevaluableDeclarer); ok {
		declared = d.RevaluableAttributes()
	}
	r.attributes = parseRevaluable(declared, r.config.DefaultValuator)

	declared = nil
	if d, ok := r.owner.(RevaluateMutatorsDeclarer); ok {
		declared = d.RevaluateMutators()
	}
	r.mutators = parseMutators(declared)

	r.setupAccessors()
}

func (r *Revaluable) Owner() interface{} {
	return r.owner
}

func (r *Revaluable) Host() Host {
	return r.host
}

// GetRevaluableAttributes returns the map of attribute name to valuator identifier
func (r *Revaluable) GetRevaluableAttributes() map[string]string {
	attrs := make(map[string]string, len(r.attributes))
	for name, valuator := range r.attributes {
		attrs[name] = valuator
	}
	return attrs
}

func (r *Revaluable) GetRevaluateMutators() map[string]Mutator {
	mutators := make(map[string]Mutator, len(r.mutators))
	for name, m := range r.mutators {
		mutators[name] = m
	}
	return mutators
}

func (r *Revaluable) GetRevaluableAttributePrefix() string {
	return r.prefix
}

// GetRevaluablePrefixedAttributeName returns "<prefix>_<name>"
func (r *Revaluable) GetRevaluablePrefixedAttributeName(name string) string {
	return r.prefix + "_" + name
}

func (r *Revaluable) IsAppendRevaluated() bool {
	return r.appendRevaluated
}

func (r *Revaluable) revaluableValuator(name string) (attribute, valuator string, ok bool) {
	if valuator, ok = r.attributes[name]; ok {
		return name, valuator, true
	}
	attribute = ToSnake(name)
	valuator, ok = r.attributes[attribute]
	return
}

// GetRevaluatedAttribute returns a new valuator of attribute name. If name isn't
// revaluable, returns nil valuator without error.
func (r *Revaluable) GetRevaluatedAttribute(name string) (v Valuator, err error) {
	attribute, valuator, ok := r.revaluableValuator(name)
	if !ok {
		return
	}
	var typ ValuatorType
	if typ, err = r.registry.Resolve(valuator); err != nil {
		return nil, errors.Wrapf(err, "attribute %q", attribute)
	}
	var raw interface{}
	if raw, err = r.host.GetAttribute(attribute); err != nil {
		return nil, errors.Wrapf(err, "get raw value of %q", attribute)
	}
	return typ.New(raw, attribute, r.owner), nil
}

// GetAttribute returns the value of name. Resolution order:
//  - `raw_<attribute>`: the raw value of revaluable attribute
//  - `<prefix>_<attribute>`: the valuator of attribute
//  - revaluable attribute: the default format of valuator
//  - mutator: the result of mutator operation
//  - the host value
func (r *Revaluable) GetAttribute(name string) (value interface{}, err error) {
	if strings.HasPrefix(name, RawPrefix) {
		attribute := name[len(RawPrefix):]
		var v Valuator
		if v, err = r.GetRevaluatedAttribute(attribute); err != nil {
			return
		}
		if v == nil {
			return nil, errors.Wrapf(ErrUnregisteredAttribute, "%q", attribute)
		}
		return v.Raw(), nil
	}

	if prefix := r.prefix + "_"; strings.HasPrefix(name, prefix) {
		var v Valuator
		if v, err = r.GetRevaluatedAttribute(name[len(prefix):]); err != nil || v == nil {
			return
		}
		return v, nil
	}

	if _, ok := r.attributes[name]; ok {
		var v Valuator
		if v, err = r.GetRevaluatedAttribute(name); err != nil {
			return
		}
		return v.DefaultFormat(), nil
	}

	if m, ok := r.mutators[name]; ok {
		return r.mutate(name, m)
	}

	return r.host.GetAttribute(name)
}

// MustGetAttribute returns the value of name or panics on error
func (r *Revaluable) MustGetAttribute(name string) interface{} {
	value, err := r.GetAttribute(name)
	if err != nil {
		panic(err)
	}
	return value
}

func (r *Revaluable) mutate(name string, m Mutator) (value interface{}, err error) {
	var v Valuator
	if v, err = r.GetRevaluatedAttribute(m.Attribute); err != nil {
		return
	}
	if v == nil {
		return nil, OperationError{ErrUnregisteredAttribute, name, m.Attribute, m.Operation}
	}
	log.Debug("revaluation: mutator", name, m.Attribute, m.Operation)
	if value, err = callOperation(v, m.Operation); err != nil {
		return nil, OperationError{err, name, m.Attribute, m.Operation}
	}
	return
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// callOperation calls the valuator method named operation. Accepted signatures are
// `func() T` and `func() (T, error)`.
func callOperation(v Valuator, operation string) (result interface{}, err error) {
	method := reflect.ValueOf(v).MethodByName(ToStudly(operation))
	if !method.IsValid() {
		return nil, ErrOperationNotInvocable
	}
	typ := method.Type()
	if typ.NumIn() != 0 || typ.NumOut() == 0 || typ.NumOut() > 2 ||
		(typ.NumOut() == 2 && !typ.Out(1).Implements(errorType)) {
		return nil, errors.Wrapf(ErrOperationNotInvocable, "bad signature %s", typ)
	}

	defer func() {
		if rec := recover(); rec != nil {
			var perr error
			switch t := rec.(type) {
			case error:
				perr = t
			default:
				perr = fmt.Errorf("%v", t)
			}
			err = tracederror.New(errors.Wrap(perr, "panic"))
		}
	}()

	out := method.Call(nil)
	result = out[0].Interface()
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return
}

// SetAttribute stores value of name. If name is revaluable, value is converted to
// storable value by the valuator type and name is added to revaluated attributes.
func (r *Revaluable) SetAttribute(name string, value interface{}) (err error) {
	valuator, revaluable := r.attributes[name]
	if revaluable {
		var typ ValuatorType
		if typ, err = r.registry.Resolve(valuator); err != nil {
			return errors.Wrapf(err, "attribute %q", name)
		}
		if value, err = typ.ToStorable(value); err != nil {
			return errors.Wrapf(err, "storable value of %q", name)
		}
	}
	if err = r.host.SetAttribute(name, value); err != nil {
		return
	}
	if revaluable {
		r.revaluated = append(r.revaluated, name)
		log.Debug("revaluation: revaluated", name, value)
	}
	return
}

// Set is a fluent SetAttribute. Errors are added to r.Error.
func (r *Revaluable) Set(name string, value interface{}) *Revaluable {
	r.AddError(r.SetAttribute(name, value))
	return r
}

// AddError add error to r.Error
func (r *Revaluable) AddError(err error) error {
	if err != nil {
		if r.Error == nil {
			r.Error = err
		} else {
			r.Error = Errors{}.Add(r.Error, err)
		}
	}
	return err
}

// GetRevaluated returns the revaluated attributes names, on write order
func (r *Revaluable) GetRevaluated() []string {
	return append([]string{}, r.revaluated...)
}

// IsRevaluated returns if any of attributes was revaluated
func (r *Revaluable) IsRevaluated(attributes ...string) bool {
	return r.isRevaluated(attributes, false)
}

// IsRevaluatedAll returns if all attributes was revaluated
func (r *Revaluable) IsRevaluatedAll(attributes ...string) bool {
	return r.isRevaluated(attributes, true)
}

func (r *Revaluable) isRevaluated(attributes []string, matchAll bool) bool {
	set := make(map[string]struct{}, len(r.revaluated))
	for _, name := range r.revaluated {
		set[name] = struct{}{}
	}
	for _, name := range attributes {
		_, ok := set[name]
		if ok && !matchAll {
			return true
		}
		if !ok && matchAll {
			return false
		}
	}
	return matchAll
}

// AttributesToMap exports the host attributes. If append revaluated is disabled, the
// `<prefix>_<attribute>` of each revaluable attribute is appended to export.
func (r *Revaluable) AttributesToMap() (map[string]interface{}, error) {
	if !r.appendRevaluated {
		names := make([]string, 0, len(r.attributes))
		for name := range r.attributes {
			names = append(names, r.GetRevaluablePrefixedAttributeName(name))
		}
		sort.Strings(names)
		r.host.Append(names...)
	}
	return r.host.AttributesToMap(r.GetAttribute)
}
