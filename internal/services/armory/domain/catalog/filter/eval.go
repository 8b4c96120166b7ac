package filter

import (
	"cmp"
	"fmt"
	"strings"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Resolver returns a value for a field name.
type Resolver func(name string) (any, bool)

// Evaluate evaluates a parsed filter expression against a resolver.
func Evaluate(e *expr.Expr, resolve Resolver) (bool, error) {
	if e == nil {
		return true, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return evalCall(kind.CallExpr, resolve)
	default:
		return false, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

// comparisons maps both CEL-style and AIP-style operator names to the
// test applied to the three-way comparison result.
var comparisons = map[string]func(result int) bool{
	"_==_": func(c int) bool { return c == 0 },
	"=":    func(c int) bool { return c == 0 },
	"_!=_": func(c int) bool { return c != 0 },
	"!=":   func(c int) bool { return c != 0 },
	"_<_":  func(c int) bool { return c < 0 },
	"<":    func(c int) bool { return c < 0 },
	"_<=_": func(c int) bool { return c <= 0 },
	"<=":   func(c int) bool { return c <= 0 },
	"_>_":  func(c int) bool { return c > 0 },
	">":    func(c int) bool { return c > 0 },
	"_>=_": func(c int) bool { return c >= 0 },
	">=":   func(c int) bool { return c >= 0 },
}

func evalCall(call *expr.Expr_Call, resolve Resolver) (bool, error) {
	switch call.Function {
	case "_&&_", "AND":
		return evalAnd(call.Args, resolve)
	case "_||_", "OR":
		return evalOr(call.Args, resolve)
	case "!_", "NOT":
		return evalNot(call.Args, resolve)
	}
	test, ok := comparisons[call.Function]
	if !ok {
		return false, fmt.Errorf("unsupported function: %s", call.Function)
	}
	return evalCompare(call.Args, resolve, test)
}

func evalAnd(args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("AND requires 2 arguments")
	}
	left, err := Evaluate(args[0], resolve)
	if err != nil || !left {
		return left, err
	}
	return Evaluate(args[1], resolve)
}

func evalOr(args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("OR requires 2 arguments")
	}
	left, err := Evaluate(args[0], resolve)
	if err != nil {
		return false, err
	}
	if left {
		return true, nil
	}
	return Evaluate(args[1], resolve)
}

func evalNot(args []*expr.Expr, resolve Resolver) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("NOT requires 1 argument")
	}
	matched, err := Evaluate(args[0], resolve)
	if err != nil {
		return false, err
	}
	return !matched, nil
}

func evalCompare(args []*expr.Expr, resolve Resolver, test func(int) bool) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return false, err
	}
	left, ok := resolve(field)
	if !ok {
		return false, fmt.Errorf("unknown field: %s", field)
	}
	right, err := extractValue(args[1])
	if err != nil {
		return false, err
	}

	result, err := compareValues(left, right)
	if err != nil {
		return false, err
	}
	return test(result), nil
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
	default:
		return nil, fmt.Errorf("expected constant, got %T", kind)
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
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func compareValues(left any, right any) (int, error) {
	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, fmt.Errorf("type mismatch: string vs %T", right)
		}
		return strings.Compare(l, r), nil
	case int:
		return compareNumbers(float64(l), right)
	case int64:
		return compareNumbers(float64(l), right)
	case uint64:
		return compareNumbers(float64(l), right)
	case float64:
		return compareNumbers(l, right)
	default:
		return 0, fmt.Errorf("unsupported value type: %T", left)
	}
}

func compareNumbers(left float64, right any) (int, error) {
	r, ok := toFloat(right)
	if !ok {
		return 0, fmt.Errorf("type mismatch: number vs %T", right)
	}
	return cmp.Compare(left, r), nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
