package revaluation

// Pair declares an attribute with an explicit valuator identifier
type Pair struct {
	Attribute string
	Valuator  string
}

// Mutator declares a virtual attribute value as the result of Operation
// called on the valuator of Attribute
type Mutator struct {
	Attribute string
	Operation string
}

func parseRevaluable(declared interface{}, defaultValuator string) (result map[string]string) {
	result = map[string]string{}
	add := func(attribute, valuator string) {
		if attribute == "" {
			return
		}
		if valuator == "" {
			valuator = defaultValuator
		}
		result[attribute] = valuator
	}

	switch t := declared.(type) {
	case []string:
		for _, attribute := range t {
			add(attribute, "")
		}
	case map[string]string:
		for attribute, valuator := range t {
			add(attribute, valuator)
		}
	case []Pair:
		for _, p := range t {
			add(p.Attribute, p.Valuator)
		}
	case []interface{}:
		for _, item := range t {
			switch it := item.(type) {
			case string:
				add(it, "")
			case Pair:
				add(it.Attribute, it.Valuator)
			case map[string]string:
				for attribute, valuator := range it {
					add(attribute, valuator)
				}
			}
		}
	}
	return
}

func parseMutators(declared interface{}) (result map[string]Mutator) {
	result = map[string]Mutator{}
	switch t := declared.(type) {
	case map[string]Mutator:
		for name, m := range t {
			result[name] = m
		}
	case map[string][2]string:
		for name, m := range t {
			result[name] = Mutator{m[0], m[1]}
		}
	case map[string][]string:
		for name, m := range t {
			if len(m) == 2 {
				result[name] = Mutator{m[0], m[1]}
			}
		}
	}
	return
}
