package revaluation

type Opt interface {
	Apply(r *Revaluable) *Revaluable
}

type OptFunc func(r *Revaluable) *Revaluable

func (o OptFunc) Apply(r *Revaluable) *Revaluable {
	return o(r)
}

// OptConfig uses a copy of cfg instead of global config. Nil uses the default config.
func OptConfig(cfg *Config) Opt {
	c := cfg.Clone()
	return OptFunc(func(r *Revaluable) *Revaluable {
		r.config = *c
		return r
	})
}

func OptPrefix(prefix string) Opt {
	return OptFunc(func(r *Revaluable) *Revaluable {
		r.config.Prefix = prefix
		return r
	})
}

func OptDefaultValuator(name string) Opt {
	return OptFunc(func(r *Revaluable) *Revaluable {
		r.config.DefaultValuator = name
		return r
	})
}

func OptAppendRevaluated(enabled bool) Opt {
	return OptFunc(func(r *Revaluable) *Revaluable {
		r.config.AppendRevaluated = &enabled
		return r
	})
}

// OptRegistry resolves valuators from registry instead of default registry
func OptRegistry(registry *ValuatorRegistrator) Opt {
	return OptFunc(func(r *Revaluable) *Revaluable {
		r.registry = registry
		return r
	})
}
