package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plan"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons maps the binary operators onto their SQL symbol.
var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one condition of a WHERE clause bound as a named sqlx argument. ArgName tells two
// conditions on the same column apart, such as the bounds of a check-in date range.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, argName := f.column(), f.argName()

	if symbol, ok := comparisons[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", column, symbol, argName), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, argName), args
	case FilterOperatorIn:
		return f.inClause(column, argName, args)
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return fmt.Sprintf("(%s)", query), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// inClause expands a slice into one named argument per element so sqlx can bind it.
func (f *Filter) inClause(column, argName string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if kind := val.Kind(); kind != reflect.Array && kind != reflect.Slice {
		return fmt.Sprintf("%s IN (%s) ", column, f.Value), args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		name := fmt.Sprintf("%s_%d", argName, idx)
		args[name] = val.Index(idx).Interface()
		named[idx] = ":" + name
	}

	return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// And groups filters that must all match.
func And(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}

// Or groups filters of which at least one must match.
func Or(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorOr}
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+f.Operator+" ")), args
}
