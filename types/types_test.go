package types

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

type euroModel struct{}

func (euroModel) Currency() string {
	return "EUR"
}

func TestMoneyType_ToStorable(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    interface{}
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"float", 10.5, int64(1050), false},
		{"int", 7, int64(700), false},
		{"string", " $3.25 ", int64(325), false},
		{"negative", "-1.5", int64(-150), false},
		{"money", MoneyType{}.New(int64(42), "price", nil), int64(42), false},
		{"invalid", "abc", nil, true},
		{"huge string", "1e300", nil, true},
		{"huge float", 1e17, nil, true},
		{"huge negative", -1e17, nil, true},
		{"nan", "NaN", nil, true},
		{"inf", "Inf", nil, true},
		{"negative inf", math.Inf(-1), nil, true},
		{"large", 9e16, int64(9e18), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MoneyType{}.ToStorable(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToStorable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToStorable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoneyType_ToStorableOutOfRange(t *testing.T) {
	for _, value := range []interface{}{"1e300", 1e17, "NaN", math.Inf(1)} {
		if _, err := (MoneyType{}).ToStorable(value); errors.Cause(err) != ErrMoneyOutOfRange {
			t.Errorf("%v: expected out of range error; but got = %v", value, err)
		}
	}
}

func TestMoney(t *testing.T) {
	m := MoneyType{}.New(int64(-1205), "price", nil).(*Money)
	if m.String() != "-12.05" {
		t.Errorf("String() = %v", m.String())
	}
	if m.AsCurrency() != "USD -12.05" {
		t.Errorf("AsCurrency() = %v", m.AsCurrency())
	}
	if m.DefaultFormat() != -12.05 {
		t.Errorf("DefaultFormat() = %v", m.DefaultFormat())
	}
	if m.Attribute() != "price" {
		t.Errorf("Attribute() = %v", m.Attribute())
	}
	data, _ := json.Marshal(m)
	if string(data) != "-12.05" {
		t.Errorf("MarshalJSON() = %s", data)
	}

	eur := MoneyType{}.New(100, "price", euroModel{}).(*Money)
	if eur.AsCurrency() != "EUR 1.00" {
		t.Errorf("AsCurrency() = %v", eur.AsCurrency())
	}
	brl := MoneyType{Currency: "BRL"}.New(nil, "price", nil).(*Money)
	if brl.AsCurrency() != "BRL 0.00" {
		t.Errorf("AsCurrency() = %v", brl.AsCurrency())
	}
}

func TestPercentType_ToStorable(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    interface{}
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"fraction", 0.25, 0.25, false},
		{"percent string", "12.5%", 0.125, false},
		{"fraction string", "0.5", 0.5, false},
		{"percent", PercentType{}.New(0.75, "rate", nil), 0.75, false},
		{"invalid percent", "x%", nil, true},
		{"invalid", "x", nil, true},
		{"nan", "NaN", nil, true},
		{"inf", math.Inf(1), nil, true},
		{"inf percent", "Inf%", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentType{}.ToStorable(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToStorable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToStorable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	p := PercentType{}.New(0.125, "rate", nil).(*Percent)
	if p.Percentage() != 12.5 {
		t.Errorf("Percentage() = %v", p.Percentage())
	}
	if p.DefaultFormat() != "12.5%" {
		t.Errorf("DefaultFormat() = %v", p.DefaultFormat())
	}
}

func TestEmailType_ToStorable(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    interface{}
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"blank", "  ", "", false},
		{"normalize", " John@Example.COM ", "john@example.com", false},
		{"no at", "john", nil, true},
		{"two at", "a@b@c", nil, true},
		{"no local", "@example.com", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EmailType{}.ToStorable(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToStorable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToStorable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	e := EmailType{}.New("john@example.com", "email", nil).(*Email)
	if e.Local() != "john" || e.Domain() != "example.com" {
		t.Errorf("Local() = %v, Domain() = %v", e.Local(), e.Domain())
	}
	if e.Masked() != "j***@example.com" {
		t.Errorf("Masked() = %v", e.Masked())
	}
	if e.DefaultFormat() != "john@example.com" || e.IsZero() {
		t.Errorf("DefaultFormat() = %v", e.DefaultFormat())
	}
	if !(EmailType{}).New(nil, "email", nil).(*Email).IsZero() {
		t.Error("expected zero")
	}
}
