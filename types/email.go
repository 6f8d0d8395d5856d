package types

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/moisespsena-go/revaluation"
)

const (
	EmailValuator = "email"
	EmailSize     = 255
)

var ErrInvalidEmail = errors.New("invalid email")

type (
	// Email exposes a stored lower case email address
	Email struct {
		revaluation.Base
	}

	EmailType struct{}
)

func init() {
	revaluation.Register(EmailValuator, EmailType{})
}

func (EmailType) New(raw interface{}, attribute string, owner interface{}) revaluation.Valuator {
	return &Email{revaluation.NewBase(raw, attribute, owner)}
}

// ToStorable trims and lower cases the address
func (EmailType) ToStorable(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, errors.Wrap(err, "email")
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if len(s) > EmailSize || strings.Count(s, "@") != 1 || strings.HasPrefix(s, "@") || strings.HasSuffix(s, "@") {
		return nil, errors.Wrapf(ErrInvalidEmail, "%q", s)
	}
	return s, nil
}

func (e *Email) String() string {
	return cast.ToString(e.Raw())
}

func (e *Email) Local() string {
	s := e.String()
	if i := strings.IndexByte(s, '@'); i >= 0 {
		return s[:i]
	}
	return s
}

func (e *Email) Domain() string {
	s := e.String()
	if i := strings.IndexByte(s, '@'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// Masked returns the address with local part masked, e.g. "j***@example.com"
func (e *Email) Masked() string {
	local, domain := e.Local(), e.Domain()
	if local == "" || domain == "" {
		return e.String()
	}
	return local[:1] + "***@" + domain
}

func (e *Email) IsZero() bool {
	return e.String() == ""
}

func (e *Email) DefaultFormat() interface{} {
	return e.String()
}
