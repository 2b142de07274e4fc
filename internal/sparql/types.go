package sparql

import (
	"encoding/json"
	"strconv"
)

// Value types used in SPARQL JSON results.
const (
	TypeURI       = "uri"
	TypeLiteral   = "literal"
	TypeBlankNode = "bnode"
)

// Value is a single typed value from a result binding.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Binding is one result row, mapping variable names to values.
type Binding map[string]Value

// Lookup returns the value bound to the variable, if any.
func (b Binding) Lookup(name string) (Value, bool) {
	v, ok := b[name]
	return v, ok
}

// String returns the string form of a bound variable. A missing
// binding returns ok=false, never an empty-string stand-in.
func (b Binding) String(name string) (string, bool) {
	v, ok := b[name]
	if !ok {
		return "", false
	}
	return v.Value, true
}

// Float returns a bound variable coerced to float64. Missing bindings
// and unparseable values both report ok=false.
func (b Binding) Float(name string) (float64, bool) {
	v, ok := b[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int returns a bound variable coerced to int. Missing bindings and
// unparseable values both report ok=false.
func (b Binding) Int(name string) (int, bool) {
	v, ok := b[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Result is a decoded SPARQL SELECT result.
type Result struct {
	Vars     []string
	Bindings []Binding
}

// Count decodes a single-row, single-variable integer result. An empty
// binding set decodes to 0.
func (r *Result) Count(name string) int {
	if len(r.Bindings) == 0 {
		return 0
	}
	n, _ := r.Bindings[0].Int(name)
	return n
}

// wireResult mirrors the standard SPARQL JSON results shape.
type wireResult struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// UnmarshalJSON decodes the standard SPARQL JSON results shape.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Vars = w.Head.Vars
	r.Bindings = w.Results.Bindings
	return nil
}

// MarshalJSON encodes back to the standard SPARQL JSON results shape,
// so raw query responses pass through unchanged.
func (r *Result) MarshalJSON() ([]byte, error) {
	var w wireResult
	w.Head.Vars = r.Vars
	if w.Head.Vars == nil {
		w.Head.Vars = []string{}
	}
	w.Results.Bindings = r.Bindings
	if w.Results.Bindings == nil {
		w.Results.Bindings = []Binding{}
	}
	return json.Marshal(w)
}
