package enginetest

import (
	"math"
	"strings"
	"testing"

	"github.com/miniopt/miniopt/mip"
	"github.com/miniopt/miniopt/solve"
)

func buildModel(t *testing.T, f func(b *mip.Builder)) *mip.Model {
	t.Helper()
	b := mip.NewBuilder()
	f(b)
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}
	return m
}

func TestExhaustive_MinimizeAndMaximize(t *testing.T) {
	var x, y mip.Var
	m := buildModel(t, func(b *mip.Builder) {
		x = b.NewVar(mip.Integer, 0, 3, "x")
		y = b.NewVar(mip.Integer, 0, 3, "y")
		b.AddLe(mip.NewExpr(x, y), mip.Constant(4), "")
		b.Maximize(mip.NewExpr(x).Plus(y.Times(2)))
	})

	out, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if out.Status != solve.StatusOptimal {
		t.Fatalf("Status = %v, want OPTIMAL", out.Status)
	}
	// x + 2y subject to x + y <= 4, domains [0,3]: best is x=1, y=3.
	if out.Objective != 7 {
		t.Errorf("Objective = %v, want 7", out.Objective)
	}
	if out.Values[x.Index()] != 1 || out.Values[y.Index()] != 3 {
		t.Errorf("solution = (%v, %v), want (1, 3)", out.Values[x.Index()], out.Values[y.Index()])
	}
}

func TestExhaustive_Infeasible(t *testing.T) {
	m := buildModel(t, func(b *mip.Builder) {
		x := b.NewVar(mip.Integer, 0, 2, "x")
		b.AddGe(x, mip.Constant(5), "")
		b.Minimize(mip.NewExpr(x))
	})

	out, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if out.Status != solve.StatusInfeasible {
		t.Errorf("Status = %v, want INFEASIBLE", out.Status)
	}
	if out.Values != nil || out.HasObjective {
		t.Error("infeasible outcome carries solution state")
	}
}

func TestExhaustive_EmptyIntegerDomain(t *testing.T) {
	m := buildModel(t, func(b *mip.Builder) {
		// No integer lies in [0.2, 0.8].
		x := b.NewVar(mip.Integer, 0.2, 0.8, "x")
		b.Minimize(mip.NewExpr(x))
	})

	out, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if out.Status != solve.StatusInfeasible {
		t.Errorf("Status = %v, want INFEASIBLE", out.Status)
	}
}

func TestExhaustive_RejectsContinuous(t *testing.T) {
	m := buildModel(t, func(b *mip.Builder) {
		x := b.NewVar(mip.Continuous, 0, 1, "x")
		b.Minimize(mip.NewExpr(x))
	})

	_, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err == nil || !strings.Contains(err.Error(), "continuous") {
		t.Errorf("Solve error = %v, want a continuous-variable rejection", err)
	}
}

func TestExhaustive_RejectsUnbounded(t *testing.T) {
	m := buildModel(t, func(b *mip.Builder) {
		x := b.NewVar(mip.Integer, 0, math.Inf(1), "x")
		b.Minimize(mip.NewExpr(x))
	})

	_, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err == nil || !strings.Contains(err.Error(), "unbounded") {
		t.Errorf("Solve error = %v, want an unbounded-domain rejection", err)
	}
}

func TestExhaustive_PointBudget(t *testing.T) {
	m := buildModel(t, func(b *mip.Builder) {
		x := b.NewBinaryVars("x", 4)
		b.Minimize(mip.NewExpr(x.At(0)))
	})

	_, err := (&Exhaustive{MaxPoints: 8}).Solve(m, solve.Options{})
	if err == nil || !strings.Contains(err.Error(), "budget") {
		t.Errorf("Solve error = %v, want a point-budget rejection", err)
	}
}

func TestExhaustive_HonorsIndicatorCondition(t *testing.T) {
	var trig, x mip.Var
	m := buildModel(t, func(b *mip.Builder) {
		trig = b.NewVar(mip.Binary, 0, 1, "trig")
		x = b.NewVar(mip.Integer, 0, 5, "x")
		// trig == 1 forces x <= 2; maximizing x + 10*trig must still
		// prefer trig = 1.
		b.Implies(trig, x, mip.Constant(2), "")
		b.Maximize(mip.NewExpr(x).Plus(trig.Times(10)))
	})

	out, err := (&Exhaustive{}).Solve(m, solve.Options{})
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if out.Objective != 12 {
		t.Errorf("Objective = %v, want 12 (trig=1, x=2)", out.Objective)
	}
	if out.Values[trig.Index()] != 1 || out.Values[x.Index()] != 2 {
		t.Errorf("solution = (trig=%v, x=%v), want (1, 2)",
			out.Values[trig.Index()], out.Values[x.Index()])
	}
}
