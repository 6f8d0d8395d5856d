package revaluation

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type accessor struct {
	method, attribute string
}

// AccessorName returns the dynamic accessor method name of attribute,
// e.g. "price" -> "getRevaluatedPriceAttribute"
func (r *Revaluable) AccessorName(attribute string) string {
	return "get" + ToStudly(r.prefix) + ToStudly(attribute) + "Attribute"
}

func (r *Revaluable) setupAccessors() {
	r.accessors = make(map[string]accessor, len(r.attributes))
	for attribute := range r.attributes {
		method := r.AccessorName(attribute)
		r.accessors[strings.ToLower(method)] = accessor{method, attribute}
	}
}

// Accessors returns the sorted names of methods accepted by Call
func (r *Revaluable) Accessors() (names []string) {
	for _, a := range r.accessors {
		names = append(names, a.method)
	}
	sort.Strings(names)
	return
}

// Call calls the method. Accessor methods (see Accessors, matched case insensitive)
// returns the GetRevaluatedAttribute result. Other methods are delegated to host if it
// is a Caller.
func (r *Revaluable) Call(method string, args ...interface{}) (result interface{}, err error) {
	if a, ok := r.accessors[strings.ToLower(method)]; ok {
		var v Valuator
		if v, err = r.GetRevaluatedAttribute(a.attribute); err != nil || v == nil {
			return
		}
		return v, nil
	}
	if caller, ok := r.host.(Caller); ok {
		return caller.Call(method, args...)
	}
	return nil, errors.Wrapf(ErrNoSuchMethod, "%T.%s", r.owner, method)
}
