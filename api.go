package revaluation

type (
	// AttributeResolver resolves an attribute value by name. Used by the host export to
	// read appended (virtual) attributes through the interceptor.
	AttributeResolver func(name string) (value interface{}, err error)

	AttributeGetter interface {
		GetAttribute(name string) (value interface{}, err error)
	}

	AttributeSetter interface {
		SetAttribute(name string, value interface{}) error
	}

	AttributesMapper interface {
		AttributesToMap(resolve AttributeResolver) (map[string]interface{}, error)
	}

	Appender interface {
		Append(names ...string)
		Appends() []string
	}

	// Caller is the dynamic dispatch fallback
	Caller interface {
		Call(method string, args ...interface{}) (result interface{}, err error)
	}

	// Host is the default persistence behavior the interceptor delegates to
	Host interface {
		AttributeGetter
		AttributeSetter
		AttributesMapper
		Appender
	}

	// RevaluableDeclarer declares the revaluable attributes of a model. Accepted values
	// are []string, map[string]string or []interface{} mixing string, Pair and
	// map[string]string.
	RevaluableDeclarer interface {
		RevaluableAttributes() interface{}
	}

	// RevaluateMutatorsDeclarer declares virtual attributes backed by a valuator
	// operation. Accepted values are map[string]Mutator, map[string][2]string and
	// map[string][]string.
	RevaluateMutatorsDeclarer interface {
		RevaluateMutators() interface{}
	}

	RevaluablePrefixDeclarer interface {
		RevaluableAttributePrefix() string
	}

	AppendRevaluatedDeclarer interface {
		AppendRevaluated() bool
	}
)
