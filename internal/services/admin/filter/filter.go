// Package filter provides AIP-160 filter expression parsing and SQL
// translation for the console list pages.
package filter

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/chekout/admin/internal/services/admin/storage"
)

// ProductDeclarations returns the field declarations for product filtering.
func ProductDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("category_id", filtering.TypeString),
		filtering.DeclareIdent("price_cents", filtering.TypeInt),
		filtering.DeclareIdent("stock", filtering.TypeInt),
		filtering.DeclareIdent("is_active", filtering.TypeBool),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("true", filtering.TypeBool),
		filtering.DeclareIdent("false", filtering.TypeBool),
	)
}

// OrderDeclarations returns the field declarations for order filtering.
func OrderDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("user_id", filtering.TypeString),
		filtering.DeclareIdent("status", filtering.TypeString),
		filtering.DeclareIdent("total_cents", filtering.TypeInt),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
	)
}

var productColumns = map[string]string{
	"name":        "name",
	"category_id": "category_id",
	"price_cents": "price_cents",
	"stock":       "stock",
	"is_active":   "is_active",
	"created_at":  "created_at",
}

var orderColumns = map[string]string{
	"user_id":     "user_id",
	"status":      "status",
	"total_cents": "total_cents",
	"created_at":  "created_at",
}

// ParseProductFilter parses an AIP-160 filter for the product list. Returns an
// empty condition for an empty filter string.
func ParseProductFilter(filterStr string) (storage.ListFilter, error) {
	decls, err := ProductDeclarations()
	if err != nil {
		return storage.ListFilter{}, fmt.Errorf("create declarations: %w", err)
	}
	return parse(filterStr, decls, productColumns)
}

// ParseOrderFilter parses an AIP-160 filter for the order list.
func ParseOrderFilter(filterStr string) (storage.ListFilter, error) {
	decls, err := OrderDeclarations()
	if err != nil {
		return storage.ListFilter{}, fmt.Errorf("create declarations: %w", err)
	}
	return parse(filterStr, decls, orderColumns)
}

func parse(filterStr string, decls *filtering.Declarations, columns map[string]string) (storage.ListFilter, error) {
	if strings.TrimSpace(filterStr) == "" {
		return storage.ListFilter{}, nil
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return storage.ListFilter{}, fmt.Errorf("parse filter: %w", err)
	}

	tr := translator{columns: columns}
	return tr.expr(parsed.CheckedExpr.Expr)
}

type translator struct {
	columns map[string]string
}

func (t translator) expr(e *expr.Expr) (storage.ListFilter, error) {
	if e == nil {
		return storage.ListFilter{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return t.call(kind.CallExpr)
	default:
		return storage.ListFilter{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func (t translator) call(call *expr.Expr_Call) (storage.ListFilter, error) {
	switch call.Function {
	case "_&&_", "AND":
		return t.binary(call.Args, "AND")
	case "_||_", "OR":
		return t.binary(call.Args, "OR")
	case "_==_", "=":
		return t.comparison(call.Args, "=")
	case "_!=_", "!=":
		return t.comparison(call.Args, "!=")
	case "_<_", "<":
		return t.comparison(call.Args, "<")
	case "_<=_", "<=":
		return t.comparison(call.Args, "<=")
	case "_>_", ">":
		return t.comparison(call.Args, ">")
	case "_>=_", ">=":
		return t.comparison(call.Args, ">=")
	default:
		return storage.ListFilter{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func (t translator) binary(args []*expr.Expr, op string) (storage.ListFilter, error) {
	if len(args) != 2 {
		return storage.ListFilter{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := t.expr(args[0])
	if err != nil {
		return storage.ListFilter{}, err
	}
	right, err := t.expr(args[1])
	if err != nil {
		return storage.ListFilter{}, err
	}

	return storage.ListFilter{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func (t translator) comparison(args []*expr.Expr, op string) (storage.ListFilter, error) {
	if len(args) != 2 {
		return storage.ListFilter{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return storage.ListFilter{}, err
	}

	column, ok := t.columns[field]
	if !ok {
		return storage.ListFilter{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractValue(args[1])
	if err != nil {
		return storage.ListFilter{}, err
	}

	return storage.ListFilter{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	case *expr.Expr_IdentExpr:
		// Boolean literals reach the checker as declared identifiers.
		// Boolean columns persist as 0/1 integers.
		switch kind.IdentExpr.Name {
		case "true":
			return int64(1), nil
		case "false":
			return int64(0), nil
		}
		return nil, fmt.Errorf("unsupported identifier in value position: %s", kind.IdentExpr.Name)
	case *expr.Expr_CallExpr:
		// Handle timestamp("...") function calls.
		if kind.CallExpr.Function == "timestamp" && len(kind.CallExpr.Args) == 1 {
			return extractTimestampValue(kind.CallExpr.Args[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.Function)
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		// Boolean columns persist as 0/1 integers.
		if kind.BoolValue {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

// extractTimestampValue converts timestamp literals to the millisecond epoch
// representation the store persists.
func extractTimestampValue(e *expr.Expr) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil timestamp argument")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		strVal, ok := kind.ConstExpr.ConstantKind.(*expr.Constant_StringValue)
		if !ok {
			return 0, fmt.Errorf("timestamp argument must be a string")
		}
		t, err := time.Parse(time.RFC3339, strVal.StringValue)
		if err != nil {
			t, err = time.Parse(time.RFC3339Nano, strVal.StringValue)
			if err != nil {
				return 0, fmt.Errorf("invalid timestamp format: %s", strVal.StringValue)
			}
		}
		return t.UTC().UnixMilli(), nil
	default:
		return 0, fmt.Errorf("timestamp argument must be a constant string")
	}
}
