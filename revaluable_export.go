package revaluation

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Export returns AttributesToMap result with valuators replaced by their default format
func (r *Revaluable) Export() (map[string]interface{}, error) {
	attrs, err := r.AttributesToMap()
	if err != nil {
		return nil, err
	}
	for name, value := range attrs {
		if v, ok := value.(Valuator); ok {
			attrs[name] = v.DefaultFormat()
		}
	}
	return attrs, nil
}

func (r *Revaluable) MarshalJSON() ([]byte, error) {
	attrs, err := r.Export()
	if err != nil {
		return nil, err
	}
	return json.Marshal(attrs)
}

// MarshalYAML implements yaml.Marshaler
func (r *Revaluable) MarshalYAML() (interface{}, error) {
	return r.Export()
}

// MarshalMsgpack implements msgpack.Marshaler
func (r *Revaluable) MarshalMsgpack() ([]byte, error) {
	attrs, err := r.Export()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(attrs)
}
