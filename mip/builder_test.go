package mip

import (
	"errors"
	"testing"
)

func TestBuilder_HandlesAreDense(t *testing.T) {
	b := NewBuilder()
	a := b.NewVar(Continuous, 0, 10, "a")
	c := b.NewVar(Integer, -5, 5, "c")
	g := b.NewBinaryVars("g", 3)

	if a.Index() != 0 || c.Index() != 1 {
		t.Errorf("scalar handles = %d, %d, want 0, 1", a.Index(), c.Index())
	}
	for i := 0; i < 3; i++ {
		if got, want := g.At(i).Index(), VarIndex(2+i); got != want {
			t.Errorf("g.At(%d).Index() = %d, want %d", i, got, want)
		}
	}
	if b.NumVars() != 5 {
		t.Errorf("NumVars() = %d, want 5", b.NumVars())
	}
}

func TestBuilder_BinaryForcesUnitBounds(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Binary, -3, 7, "v")
	b.Minimize(v)
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}
	def := m.Vars[v.Index()]
	if def.Lb != 0 || def.Ub != 1 {
		t.Errorf("binary bounds = [%v, %v], want [0, 1]", def.Lb, def.Ub)
	}
}

func TestBuilder_DebugNames(t *testing.T) {
	b := NewBuilder(EnableDebugNames())
	v := b.NewVar(Continuous, 0, 1, "flow")
	g := b.NewVars(Integer, 0, 9, "load", 2, 2)
	anon := b.NewVar(Continuous, 0, 1, "")
	b.Minimize(v)
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}

	if got := m.Vars[v.Index()].Name; got != "flow" {
		t.Errorf("scalar name = %q, want %q", got, "flow")
	}
	wantNames := []string{"load[0,0]", "load[0,1]", "load[1,0]", "load[1,1]"}
	for p, want := range wantNames {
		i, j := p/2, p%2
		if got := m.Vars[g.At(i, j).Index()].Name; got != want {
			t.Errorf("name at (%d,%d) = %q, want %q", i, j, got, want)
		}
	}
	if got := m.Vars[anon.Index()].Name; got != "" {
		t.Errorf("empty base produced name %q, want empty", got)
	}
}

func TestBuilder_NamesOffByDefault(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "flow")
	g := b.NewBinaryVars("open", 2)
	b.Minimize(v)
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}
	if got := m.Vars[v.Index()].Name; got != "" {
		t.Errorf("scalar name = %q, want empty without debug names", got)
	}
	if got := m.Vars[g.At(1).Index()].Name; got != "" {
		t.Errorf("container name = %q, want empty without debug names", got)
	}
}

func TestBuilder_ObjectiveSetTwice(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "v")
	b.Minimize(v)
	b.Maximize(v)
	if _, err := b.Model(); err == nil {
		t.Fatal("Model() succeeded after the objective was set twice")
	}
}

func TestBuilder_MissingObjective(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "v")
	b.Add(NewExpr(v).Le(Constant(1)))
	_, err := b.Model()
	if !errors.Is(err, ErrNoObjective) {
		t.Fatalf("Model() error = %v, want ErrNoObjective", err)
	}
}

func TestBuilder_NilConstraint(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "v")
	b.Add(nil)
	b.Minimize(v)
	if _, err := b.Model(); err == nil {
		t.Fatal("Model() succeeded after a nil constraint was submitted")
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "v")
	b.Add(nil)
	b.Minimize(v)
	b.Minimize(v)
	_, err := b.Model()
	if err == nil {
		t.Fatal("Model() succeeded with recorded errors")
	}
	if got, want := err.Error(), "nil constraint submitted"; got != want {
		t.Errorf("Model() error = %q, want first recorded error %q", got, want)
	}
}

func TestModel_Stats(t *testing.T) {
	b := NewBuilder()
	x := b.NewBinaryVars("x", 3)
	b.Add(NewExpr(x.At(0), x.At(1)).Le(Constant(1)))
	b.Add(NewExpr(x.At(0), x.At(1), x.At(2)).Eq(Constant(2)))
	b.Maximize(NewExpr(x.At(2)))
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}
	got := m.Stats()
	want := Stats{Variables: 3, Constraints: 2, NonZeros: 5}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestBuilder_ObjectiveSnapshotIsIndependent(t *testing.T) {
	b := NewBuilder()
	v := b.NewVar(Continuous, 0, 1, "v")
	obj := NewExpr(v).PlusConstant(3)
	b.Minimize(obj)
	obj.PlusConstant(100) // non-mutating; the model must still see offset 3
	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error: %v", err)
	}
	if got := m.Objective.Constant(); got != 3 {
		t.Errorf("objective offset = %v, want 3", got)
	}
	if m.Maximize {
		t.Error("Maximize = true, want false for Minimize")
	}
}
