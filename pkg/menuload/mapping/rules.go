// Package mapping turns extracted sheet records into table rows using
// declarative field rules.
package mapping

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olkkari/menuload/pkg/menuload/models"
)

// Kind selects how a rule produces its target value.
type Kind int

const (
	// String copies the source as text. Missing sources and sources present
	// with a null value both give Default, so an empty cell becomes "" and
	// never null.
	String Kind = iota
	// Nullable copies the source as text. Missing or null sources give nil.
	Nullable
	// Price coerces the source to a number. Missing or unparseable sources give 0.
	Price
	// Const always yields Default. The source is never read.
	Const
	// Flag is true iff the source is a string exactly equal to Match.
	Flag
)

// Rule maps one source field to one target field. Text targets are never
// null: a source key holding null is treated like a missing one and gets
// Default. Only Nullable rules write null.
type Rule struct {
	Target  string
	Source  string
	Kind    Kind
	Default interface{}
	Match   string
}

// Table is the ordered rule set for one remote table.
type Table struct {
	Name  string
	Rules []Rule
}

// Columns returns the target field names in rule order.
func (t Table) Columns() []string {
	cols := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		cols[i] = r.Target
	}
	return cols
}

// Apply maps a source record. The result always holds every target field.
func (t Table) Apply(src models.Record) models.Record {
	var out models.Record
	for _, r := range t.Rules {
		out.Set(r.Target, r.value(src))
	}
	return out
}

// ApplyAll maps every record, keeping order.
func (t Table) ApplyAll(src []models.Record) []models.Record {
	out := make([]models.Record, 0, len(src))
	for _, rec := range src {
		out = append(out, t.Apply(rec))
	}
	return out
}

func (r Rule) value(src models.Record) interface{} {
	if r.Kind == Const {
		return r.Default
	}

	v, ok := src.Get(r.Source)
	switch r.Kind {
	case String:
		if !ok || v == nil {
			if r.Default == nil {
				return ""
			}
			return r.Default
		}
		return toString(v)
	case Nullable:
		if !ok || v == nil {
			return nil
		}
		return toString(v)
	case Price:
		return ParsePrice(v)
	case Flag:
		s, isString := v.(string)
		return isString && s == r.Match
	}
	return nil
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
