package filter

import (
	"testing"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

var testFields = Fields{
	"key":       FieldString,
	"category":  FieldString,
	"rack_size": FieldInt,
	"cost":      FieldFloat,
}

func record(key, category string, rackSize int, cost float64) Resolver {
	return func(name string) (any, bool) {
		switch name {
		case "key":
			return key, true
		case "category":
			return category, true
		case "rack_size":
			return rackSize, true
		case "cost":
			return cost, true
		default:
			return nil, false
		}
	}
}

func TestParseEmptyMatchesEverything(t *testing.T) {
	e, err := Parse("   ", testFields)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil expression, got %v", e)
	}
	ok, err := Evaluate(e, record("IS-AC10-Ammo", "AC", 10, 6000))
	if err != nil || !ok {
		t.Fatalf("Evaluate(nil) = %v, %v", ok, err)
	}
}

func TestParseAndEvaluate(t *testing.T) {
	tests := []struct {
		filter string
		want   bool
	}{
		{`category = "LRM"`, true},
		{`category = "SRM"`, false},
		{`rack_size >= 10`, true},
		{`rack_size < 10`, false},
		{`category = "LRM" AND rack_size = 10`, true},
		{`category = "SRM" OR rack_size = 10`, true},
		{`NOT category = "SRM"`, true},
		{`key != "IS-Ammo-LRM-10"`, false},
	}
	resolve := record("IS-Ammo-LRM-10", "LRM", 10, 30000)
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			e, err := Parse(tt.filter, testFields)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := Evaluate(e, resolve)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRejectsInvalidFilters(t *testing.T) {
	for _, filter := range []string{
		`rack_size >`,
		`color = "red"`,
		`rack_size = "ten"`,
	} {
		if _, err := Parse(filter, testFields); err == nil {
			t.Errorf("Parse(%q): expected error", filter)
		}
	}
}

func TestParseRejectsUnsupportedFieldType(t *testing.T) {
	if _, err := Parse(`x = 1`, Fields{"x": FieldType("bool")}); err == nil {
		t.Fatal("expected unsupported field type error")
	}
}

func TestEvaluateFloatField(t *testing.T) {
	e := call(">", ident("cost"), &expr.Expr{ExprKind: &expr.Expr_ConstExpr{
		ConstExpr: &expr.Constant{ConstantKind: &expr.Constant_DoubleValue{DoubleValue: 10000}},
	}})
	ok, err := Evaluate(e, record("IS-AC10-Ammo", "AC", 10, 36000))
	if err != nil || !ok {
		t.Fatalf("Evaluate = %v, %v", ok, err)
	}
	ok, err = Evaluate(e, record("IS-AC10-Ammo", "AC", 10, 6000))
	if err != nil || ok {
		t.Fatalf("Evaluate = %v, %v", ok, err)
	}
}

func TestEvaluateErrors(t *testing.T) {
	str := &expr.Expr{ExprKind: &expr.Expr_ConstExpr{
		ConstExpr: &expr.Constant{ConstantKind: &expr.Constant_StringValue{StringValue: "AC"}},
	}}
	tests := []struct {
		name string
		e    *expr.Expr
	}{
		{"unknown field", call("=", ident("color"), str)},
		{"type mismatch", call("=", ident("rack_size"), str)},
		{"unsupported function", call("timestamp", ident("key"), str)},
		{"not a call", ident("key")},
	}
	resolve := record("IS-AC10-Ammo", "AC", 10, 6000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.e, resolve); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func ident(name string) *expr.Expr {
	return &expr.Expr{ExprKind: &expr.Expr_IdentExpr{IdentExpr: &expr.Expr_Ident{Name: name}}}
}

func call(fn string, args ...*expr.Expr) *expr.Expr {
	return &expr.Expr{ExprKind: &expr.Expr_CallExpr{CallExpr: &expr.Expr_Call{Function: fn, Args: args}}}
}
