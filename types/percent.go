package types

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/moisespsena-go/revaluation"
)

const PercentValuator = "percent"

var ErrInvalidPercent = errors.New("invalid percent")

type (
	// Percent exposes a fraction (0.125) as percentage (12.5)
	Percent struct {
		revaluation.Base
	}

	PercentType struct{}
)

func init() {
	revaluation.Register(PercentValuator, PercentType{})
}

func (PercentType) New(raw interface{}, attribute string, owner interface{}) revaluation.Valuator {
	return &Percent{revaluation.NewBase(raw, attribute, owner)}
}

// ToStorable accepts "12.5%" strings as percentage and numbers as fraction
func (PercentType) ToStorable(value interface{}) (interface{}, error) {
	switch t := value.(type) {
	case nil:
		return nil, nil
	case *Percent:
		return t.Fraction(), nil
	case string:
		s := strings.TrimSpace(t)
		if strings.HasSuffix(s, "%") {
			f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
			if err != nil {
				return nil, errors.Wrap(err, "percent")
			}
			return checkFraction(f / 100)
		}
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, errors.Wrap(err, "percent")
	}
	return checkFraction(f)
}

func checkFraction(f float64) (interface{}, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(ErrInvalidPercent, "%v", f)
	}
	return f, nil
}

func (p *Percent) Fraction() float64 {
	return cast.ToFloat64(p.Raw())
}

func (p *Percent) Percentage() float64 {
	return p.Fraction() * 100
}

func (p *Percent) String() string {
	return strconv.FormatFloat(p.Percentage(), 'f', -1, 64) + "%"
}

// DefaultFormat returns the percentage string, e.g. "12.5%"
func (p *Percent) DefaultFormat() interface{} {
	return p.String()
}
