// Package resource parses the key=amount[unit] resource language used on the
// command line into canonical scheduler resource amounts.
package resource

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// tokenRe is the shape every comma-separated token must have.
var tokenRe = regexp.MustCompile(`^[^=]+=\d+\s?\w*$`)

// Amount is a single canonical resource quantity.
// Memory quantities are always in MiB.
type Amount struct {
	Name     string
	Quantity int64
}

// Map holds parsed resource quantities keyed by canonical name.
type Map map[string]int64

// Amounts returns the entries of m in the given order, skipping names not in m.
func (m Map) Amounts(order []string) []Amount {
	amounts := make([]Amount, 0, len(order))
	for _, name := range order {
		if q, ok := m[name]; ok {
			amounts = append(amounts, Amount{Name: name, Quantity: q})
		}
	}
	return amounts
}

// Parse turns a resource string like "memory=4G,vcores=2,gpu=1" into a Map.
// It does not consult a registry; see ParseAndValidate.
func Parse(spec string) (Map, error) {
	m, _, err := parse(spec)
	return m, err
}

// ParseAndValidate parses spec and checks every resulting name against reg.
// Syntax errors are always reported before unknown resource names.
func ParseAndValidate(spec string, reg Registry) (Map, error) {
	m, order, err := parse(spec)
	if err != nil {
		return nil, err
	}
	if err := ValidateTypes(order, reg); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateTypes returns an UnknownResourceTypeError for the first name reg does not know.
func ValidateTypes(names []string, reg Registry) error {
	for _, name := range names {
		if !reg.Has(name) {
			return NewUnknownResourceTypeError(name)
		}
	}
	return nil
}

// parse returns the map and its keys in first-seen order.
func parse(spec string) (Map, []string, error) {
	m := make(Map)
	var order []string
	for _, token := range strings.Split(strings.TrimSpace(spec), ",") {
		token = strings.TrimSpace(token)
		name, quantity, err := parseToken(token)
		if err != nil {
			return nil, nil, err
		}
		if _, seen := m[name]; !seen {
			order = append(order, name)
		}
		m[name] = quantity
	}
	return m, order, nil
}

// parseToken handles one key=amount[unit] pair.
func parseToken(token string) (string, int64, error) {
	if !tokenRe.MatchString(token) {
		return "", 0, NewMalformedSpecError(token,
			"please provide key=amount[unit] pairs separated by commas")
	}

	key, value, _ := strings.Cut(token, "=")
	rawUnit := unitSuffix(value)
	amount := strings.TrimSpace(value[:len(value)-len(rawUnit)])

	quantity, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return "", 0, NewMalformedSpecError(token, "amount "+strconv.Quote(amount)+" is not a valid integer")
	}

	unit, err := NormalizeUnit(strings.TrimSpace(rawUnit))
	if err != nil {
		var me *MalformedSpecError
		if errors.As(err, &me) {
			me.Token = token
		}
		return "", 0, err
	}

	name, quantity, err := lookupAlias(key).apply(quantity, unit)
	if err != nil {
		return "", 0, NewMalformedSpecError(token, err.Error())
	}
	return name, quantity, nil
}

// unitSuffix returns the longest trailing run of non-digit characters.
func unitSuffix(value string) string {
	i := len(value)
	for i > 0 && (value[i-1] < '0' || value[i-1] > '9') {
		i--
	}
	return value[i:]
}
