package config

import (
	"fmt"
	"math"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// FormulaVars are the variables visible to a cooldown formula.
type FormulaVars struct {
	Base  int
	Step  int
	Floor int
	Level int
	Zone  int
}

// Formula is a compiled tengo expression yielding a cooldown in frames.
// The tengo "math" module is available as math.
type Formula struct {
	expr string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

const formulaResult = "__cooldown"

// CompileFormula compiles expr and checks that it evaluates to a number.
func CompileFormula(expr string) (*Formula, error) {
	src := "math := import(\"math\")\n" + formulaResult + " := (" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	for _, name := range []string{"base", "step", "floor", "level", "zone"} {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("cooldown formula %q: add %s: %w", expr, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("cooldown formula %q: %w", expr, err)
	}
	f := &Formula{expr: expr, compiled: compiled}
	if _, err := f.Eval(FormulaVars{Base: 60, Step: 1, Floor: 1, Level: 1}); err != nil {
		return nil, err
	}
	return f, nil
}

// String returns the source expression.
func (f *Formula) String() string {
	return f.expr
}

// Eval runs the formula and rounds the result to whole frames.
func (f *Formula) Eval(v FormulaVars) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, val := range map[string]int{
		"base":  v.Base,
		"step":  v.Step,
		"floor": v.Floor,
		"level": v.Level,
		"zone":  v.Zone,
	} {
		if err := f.compiled.Set(name, val); err != nil {
			return 0, fmt.Errorf("cooldown formula %q: set %s: %w", f.expr, name, err)
		}
	}
	if err := f.compiled.Run(); err != nil {
		return 0, fmt.Errorf("cooldown formula %q: %w", f.expr, err)
	}

	out := f.compiled.Get(formulaResult)
	switch val := out.Value().(type) {
	case int64:
		return int(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("cooldown formula %q: result %v is not finite", f.expr, val)
		}
		return int(math.Round(val)), nil
	default:
		return 0, fmt.Errorf("cooldown formula %q: result is %s, expected a number", f.expr, out.ValueType())
	}
}
