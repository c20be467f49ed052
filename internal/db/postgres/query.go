package postgres

import (
	"database/sql"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func selectList() string {
	cols := make([]string, len(product.Fields))
	for i, f := range product.Fields {
		cols[i] = pq.QuoteIdentifier(f)
	}
	return strings.Join(cols, ", ")
}

// sqlBuilder accumulates positional arguments.
type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func column(key string) (string, error) {
	if !slices.Contains(product.Fields, key) {
		return "", fmt.Errorf("unknown field %q", key)
	}
	return pq.QuoteIdentifier(key), nil
}

func (b *sqlBuilder) condition(c filter.Condition, negate bool) (string, error) {
	col, err := column(c.Key())
	if err != nil {
		return "", err
	}
	switch c.Op() {
	case filter.Contains:
		op := "ILIKE"
		if negate {
			op = "NOT ILIKE"
		}
		return fmt.Sprintf("COALESCE(%s, '') %s '%%' || %s::text || '%%'", col, op, b.bind(likeEscaper.Replace(c.Value()))), nil
	case filter.Equals:
		op := "="
		if negate {
			op = "<>"
		}
		return fmt.Sprintf("%s %s %s", col, op, b.bind(c.Value())), nil
	case filter.Present:
		if negate {
			return col + " IS NULL", nil
		}
		return col + " IS NOT NULL", nil
	default:
		return "", fmt.Errorf("unsupported operator %q", c.Op())
	}
}

func (b *sqlBuilder) where(expr filter.Expression) (string, error) {
	if expr.IsEmpty() {
		return "", nil
	}
	var parts []string
	for _, c := range expr.Must() {
		s, err := b.condition(c, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(expr.Should()) > 0 {
		alts := make([]string, 0, len(expr.Should()))
		for _, c := range expr.Should() {
			s, err := b.condition(c, false)
			if err != nil {
				return "", err
			}
			alts = append(alts, s)
		}
		parts = append(parts, "("+strings.Join(alts, " OR ")+")")
	}
	for _, c := range expr.MustNot() {
		s, err := b.condition(c, true)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return " WHERE " + strings.Join(parts, " AND "), nil
}

// buildSelect renders a search as one parameterized statement.
func buildSelect(table string, q *db.Query) (string, []any, error) {
	if q.Limit <= 0 {
		return "", nil, fmt.Errorf("limit must be positive")
	}
	var b sqlBuilder
	where, err := b.where(q.Filters)
	if err != nil {
		return "", nil, err
	}

	order := pq.QuoteIdentifier(product.FieldID) + " ASC"
	if q.SortBy != "" {
		col, err := column(q.SortBy)
		if err != nil {
			return "", nil, err
		}
		dir := "ASC"
		if q.SortDesc {
			dir = "DESC"
		}
		order = fmt.Sprintf("%s %s NULLS LAST, %s", col, dir, order)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT %s",
		selectList(), table, where, order, b.bind(q.Limit))
	return query, b.args, nil
}

func buildUpsert(table string, fields map[string]string) (string, []any) {
	var b sqlBuilder
	cols := make([]string, len(product.Fields))
	vals := make([]string, len(product.Fields))
	updates := make([]string, 0, len(product.Fields)-1)
	for i, f := range product.Fields {
		cols[i] = pq.QuoteIdentifier(f)
		if f == product.FieldRatingScore {
			var score sql.NullFloat64
			if s := product.ParseScore(fields[f]); s != nil {
				score = sql.NullFloat64{Float64: *s, Valid: true}
			}
			vals[i] = b.bind(score)
		} else {
			vals[i] = b.bind(fields[f])
		}
		if f != product.FieldID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", cols[i], cols[i]))
		}
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table, strings.Join(cols, ", "), strings.Join(vals, ", "),
		pq.QuoteIdentifier(product.FieldID), strings.Join(updates, ", "))
	return query, b.args
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRow reads the columns of selectList. NULL text becomes "", a NULL score is omitted.
func scanRow(r scanner) (map[string]string, error) {
	text := make([]sql.NullString, len(product.Fields))
	var score sql.NullFloat64
	dest := make([]any, len(product.Fields))
	for i, f := range product.Fields {
		if f == product.FieldRatingScore {
			dest[i] = &score
		} else {
			dest[i] = &text[i]
		}
	}
	if err := r.Scan(dest...); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(product.Fields))
	for i, f := range product.Fields {
		if f == product.FieldRatingScore {
			if score.Valid {
				out[f] = strconv.FormatFloat(score.Float64, 'f', -1, 64)
			}
			continue
		}
		out[f] = text[i].String
	}
	return out, nil
}
