package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect interface {
	// Placeholder returns the bind marker for the n-th argument (1-based).
	Placeholder(n int) string
	// Contains renders a case-insensitive LIKE of lhs against the bind
	// marker of an escaped pattern.
	Contains(lhs, marker string) string
}

// FoldCaseFunc is the scalar function the SQLite store registers to lower
// text with Unicode case mapping. SQLite's own LIKE only folds ASCII.
const FoldCaseFunc = "fold_case"

// SQLiteDialect renders `?` markers and folds both sides of LIKE.
type SQLiteDialect struct{}

func (SQLiteDialect) Placeholder(int) string { return "?" }
func (SQLiteDialect) Contains(lhs, marker string) string {
	return FoldCaseFunc + "(" + lhs + ") LIKE " + FoldCaseFunc + "(" + marker + `) ESCAPE '\'`
}

// PostgresDialect renders `$n` markers and uses ILIKE.
type PostgresDialect struct{}

func (PostgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }
func (PostgresDialect) Contains(lhs, marker string) string {
	return lhs + " ILIKE " + marker + ` ESCAPE '\'`
}

// Agg is an aggregate function applied to an Expr.
type Agg string

const (
	AggNone Agg = ""
	AggMax  Agg = "MAX"
)

// Expr is the sum of one or more columns, optionally aggregated.
type Expr struct {
	Columns []string
	Agg     Agg
	As      string
}

// Col is an Expr over a single column.
func Col(name string) Expr { return Expr{Columns: []string{name}} }

// Sum is an Expr adding several columns.
func Sum(names ...string) Expr { return Expr{Columns: names} }

func (e Expr) render() (string, error) {
	if len(e.Columns) == 0 {
		return "", fmt.Errorf("empty expression")
	}
	parts := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		if err := CheckIdent(c); err != nil {
			return "", err
		}
		parts[i] = Quote(c)
	}
	s := strings.Join(parts, " + ")
	if len(parts) > 1 {
		s = "(" + s + ")"
	}
	if e.Agg != AggNone {
		s = string(e.Agg) + "(" + s + ")"
	}
	if e.As != "" {
		if err := CheckIdent(e.As); err != nil {
			return "", err
		}
		s += " AS " + Quote(e.As)
	}
	return s, nil
}

// Op is a comparison operator in a Cond.
type Op int

const (
	OpEq Op = iota
	OpGt
	OpGte
	OpLt
	OpIn
	// OpContains matches a case-insensitive substring.
	OpContains
)

// Cond is one WHERE predicate. Value is used by every operator except OpIn,
// which uses Values.
type Cond struct {
	Expr   Expr
	Op     Op
	Value  any
	Values []any
}

// Order is one ORDER BY term.
type Order struct {
	Expr Expr
	Desc bool
}

// Query is a declarative single-table SELECT.
type Query struct {
	Table string
	// Columns selects named columns; empty selects every column.
	Columns []string
	// Extra appends computed columns after Columns.
	Extra    []Expr
	Distinct bool
	Where    []Cond
	OrderBy  []Order
	Limit    int
}

// Render builds the SQL text and bind arguments for d.
func (q Query) Render(d Dialect) (string, []any, error) {
	if err := CheckIdent(q.Table); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	sb.WriteString("SELECT ")
	if q.Distinct {
		sb.WriteString("DISTINCT ")
	}
	var cols []string
	if len(q.Columns) == 0 && len(q.Extra) == 0 {
		cols = append(cols, "*")
	} else if len(q.Columns) == 0 && !q.aggregated() {
		cols = append(cols, Quote(q.Table)+".*")
	}
	for _, c := range q.Columns {
		if err := CheckIdent(c); err != nil {
			return "", nil, err
		}
		cols = append(cols, Quote(c))
	}
	for _, e := range q.Extra {
		s, err := e.render()
		if err != nil {
			return "", nil, err
		}
		cols = append(cols, s)
	}
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(Quote(q.Table))

	for i, c := range q.Where {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		lhs, err := c.Expr.render()
		if err != nil {
			return "", nil, err
		}
		switch c.Op {
		case OpEq:
			sb.WriteString(lhs + " = " + bind(c.Value))
		case OpGt:
			sb.WriteString(lhs + " > " + bind(c.Value))
		case OpGte:
			sb.WriteString(lhs + " >= " + bind(c.Value))
		case OpLt:
			sb.WriteString(lhs + " < " + bind(c.Value))
		case OpIn:
			if len(c.Values) == 0 {
				sb.WriteString("1 = 0")
				continue
			}
			marks := make([]string, len(c.Values))
			for j, v := range c.Values {
				marks[j] = bind(v)
			}
			sb.WriteString(lhs + " IN (" + strings.Join(marks, ", ") + ")")
		case OpContains:
			pattern := "%" + escapeLike(fmt.Sprint(c.Value)) + "%"
			sb.WriteString(d.Contains(lhs, bind(pattern)))
		default:
			return "", nil, fmt.Errorf("unsupported operator %d", c.Op)
		}
	}

	for i, o := range q.OrderBy {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		s, err := Expr{Columns: o.Expr.Columns, Agg: o.Expr.Agg}.render()
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(s)
		if o.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + bind(q.Limit))
	}
	return sb.String(), args, nil
}

// aggregated reports whether any computed column is an aggregate, in which
// case the row wildcard is left out.
func (q Query) aggregated() bool {
	for _, e := range q.Extra {
		if e.Agg != AggNone {
			return true
		}
	}
	return false
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Normalize converts driver-specific scan results into JSON-friendly
// values.
func Normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case int32:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
