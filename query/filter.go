package query

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Filter is a compiled boolean CEL expression, reusable across many
// attribute maps and safe for concurrent use.
type Filter struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks a filter expression. The expression must
// evaluate to a boolean.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("technique", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("query: building environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("query: compiling %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("query: expression %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("query: planning %q: %w", expr, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// Expr returns the source expression.
func (f *Filter) Expr() string {
	return f.expr
}

// Match evaluates the filter against one entity attribute map.
func (f *Filter) Match(attrs map[string]any) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{"technique": attrs})
	if err != nil {
		return false, fmt.Errorf("query: evaluating %q: %w", f.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("query: expression %q returned non-bool %T", f.expr, out.Value())
	}
	return b, nil
}
