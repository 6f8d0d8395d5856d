package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/moisespsena-go/revaluation"
)

const (
	MoneyValuator   = "money"
	DefaultCurrency = "USD"
)

var ErrMoneyOutOfRange = errors.New("money amount out of range")

type (
	// Money exposes a value stored as integer cents
	Money struct {
		revaluation.Base
		currency string
	}

	// MoneyType converts amounts into integer cents
	MoneyType struct {
		Currency string
	}

	// Currencier is implemented by models having a currency
	Currencier interface {
		Currency() string
	}
)

func init() {
	revaluation.Register(MoneyValuator, MoneyType{})
}

func (typ MoneyType) New(raw interface{}, attribute string, owner interface{}) revaluation.Valuator {
	currency := typ.Currency
	if c, ok := owner.(Currencier); ok && c.Currency() != "" {
		currency = c.Currency()
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Money{revaluation.NewBase(raw, attribute, owner), currency}
}

// ToStorable converts amount (number or numeric string) into cents. Money values
// are stored as its cents.
func (MoneyType) ToStorable(value interface{}) (interface{}, error) {
	switch t := value.(type) {
	case nil:
		return nil, nil
	case *Money:
		return t.Cents(), nil
	case string:
		value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
	}
	amount, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, errors.Wrap(err, "money")
	}
	// float64(math.MaxInt64) is 2^63, the first value out of int64 range
	cents := math.Round(amount * 100)
	if math.IsNaN(cents) || cents >= float64(math.MaxInt64) || cents < float64(math.MinInt64) {
		return nil, errors.Wrapf(ErrMoneyOutOfRange, "%v", value)
	}
	return int64(cents), nil
}

func (m *Money) Currency() string {
	return m.currency
}

// Cents returns the stored value
func (m *Money) Cents() int64 {
	return cast.ToInt64(m.Raw())
}

func (m *Money) Amount() float64 {
	return float64(m.Cents()) / 100
}

// AsCurrency formats as "USD 12.34"
func (m *Money) AsCurrency() string {
	return m.currency + " " + m.String()
}

func (m *Money) String() string {
	cents := m.Cents()
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// DefaultFormat returns the amount as float
func (m *Money) DefaultFormat() interface{} {
	return m.Amount()
}

func (m *Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Amount())
}
