package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Ingredient is one entry of a recipe's ingredient list.
//
// The well-known keys are "name" (required), "quantity" and "unit". Any other
// key sent by a client is kept in Extra and written back unchanged, so clients
// can attach their own attributes (e.g. "note", "optional"). Non-string JSON
// values are kept in their JSON text form: {"quantity": 2} reads as "2".
// Extra keys survive with empty values; an empty name, quantity or unit is
// treated as absent.
type Ingredient struct {
	Name     string
	Quantity string
	Unit     string
	Extra    map[string]string
}

const (
	ingredientName     = "name"
	ingredientQuantity = "quantity"
	ingredientUnit     = "unit"
)

// fields returns the extra keys and the non-empty well-known keys.
func (i Ingredient) fields() map[string]string {
	m := make(map[string]string, len(i.Extra)+3)
	for k, v := range i.Extra {
		m[k] = v
	}
	if i.Name != "" {
		m[ingredientName] = i.Name
	}
	if i.Quantity != "" {
		m[ingredientQuantity] = i.Quantity
	}
	if i.Unit != "" {
		m[ingredientUnit] = i.Unit
	}
	return m
}

func (i Ingredient) MarshalJSON() ([]byte, error) {
	// encoding/json sorts map keys, which keeps the stored form deterministic.
	return json.Marshal(i.fields())
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Ingredient{}
	for k, v := range raw {
		value, ok := jsonText(v)
		if !ok {
			continue
		}
		switch k {
		case ingredientName:
			i.Name = value
		case ingredientQuantity:
			i.Quantity = value
		case ingredientUnit:
			i.Unit = value
		default:
			if i.Extra == nil {
				i.Extra = make(map[string]string)
			}
			i.Extra[k] = value
		}
	}
	return nil
}

// jsonText renders a raw JSON value as plain text. Nulls are reported as absent.
func jsonText(v json.RawMessage) (string, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v), true
	}
	return buf.String(), true
}

// CanonicalText renders the entry as "key=value" pairs sorted by key and
// separated by a single space.
func (i Ingredient) CanonicalText() string {
	m := i.fields()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+m[k])
	}
	return strings.Join(parts, " ")
}

// IngredientsText is the searchable text form of a whole ingredient list.
// Ingredient searches match against this string.
func IngredientsText(list []Ingredient) string {
	parts := make([]string, 0, len(list))
	for _, in := range list {
		parts = append(parts, in.CanonicalText())
	}
	return strings.Join(parts, "; ")
}
