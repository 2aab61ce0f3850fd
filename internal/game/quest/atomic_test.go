package quest

import (
	"reflect"
	"testing"
)

// fakeState is a hand-set State for atomic goal tests.
type fakeState struct {
	atExit      bool
	treasure    bool
	allPressed  bool
	hostiles    bool
	queryCalled int
}

func (f *fakeState) PlayerAtExit() bool           { f.queryCalled++; return f.atExit }
func (f *fakeState) HasUncollectedTreasure() bool { f.queryCalled++; return f.treasure }
func (f *fakeState) AllSwitchesPressed() bool     { f.queryCalled++; return f.allPressed }
func (f *fakeState) HasHostiles() bool            { f.queryCalled++; return f.hostiles }

func TestAtomicQuests(t *testing.T) {
	tests := []struct {
		name  string
		quest Mission
		state fakeState
		want  bool
	}{
		{"exit reached", NewExitQuest(), fakeState{atExit: true}, true},
		{"exit not reached", NewExitQuest(), fakeState{}, false},
		{"treasure remaining", NewTreasureQuest(), fakeState{treasure: true}, false},
		{"treasure collected", NewTreasureQuest(), fakeState{}, true},
		{"switches pressed", NewBouldersQuest(), fakeState{allPressed: true}, true},
		{"switches open", NewBouldersQuest(), fakeState{}, false},
		{"enemies alive", NewEnemyQuest(), fakeState{hostiles: true}, false},
		{"enemies gone", NewEnemyQuest(), fakeState{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			if got := tt.quest.IsComplete(&s); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
			// Повторная проверка даёт тот же результат
			if got := tt.quest.IsComplete(&s); got != tt.want {
				t.Errorf("second IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtomic_Registry(t *testing.T) {
	tests := []struct {
		name     string
		wantDesc string
		wantOK   bool
	}{
		{GoalExit, "Reach the exit", true},
		{GoalTreasure, "Collect all treasure", true},
		{GoalBoulders, "Put a boulder on every switch", true},
		{GoalEnemies, "Defeat all enemies", true},
		{"AND", "", false},
		{"dragons", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Atomic(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Atomic(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if m.Description() != tt.wantDesc {
				t.Errorf("Description() = %q, want %q", m.Description(), tt.wantDesc)
			}
		})
	}
}

func TestAtomic_Types(t *testing.T) {
	tests := []struct {
		name string
		want Mission
	}{
		{GoalExit, &ExitQuest{}},
		{GoalTreasure, &TreasureQuest{}},
		{GoalBoulders, &BouldersQuest{}},
		{GoalEnemies, &EnemyQuest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Atomic(tt.name)
			if !ok {
				t.Fatalf("Atomic(%q) not found", tt.name)
			}
			if got, want := reflect.TypeOf(m), reflect.TypeOf(tt.want); got != want {
				t.Errorf("Atomic(%q) type = %v, want %v", tt.name, got, want)
			}
		})
	}
}

func TestAtomic_IndependentTrees(t *testing.T) {
	// Two goals built from the same name can sit in different trees
	// without one's parent affecting the other.
	a, _ := Atomic(GoalTreasure)
	b, _ := Atomic(GoalTreasure)
	and := NewAndQuest(a)
	or := NewOrQuest(b, NewEnemyQuest())

	s := &fakeState{treasure: true}
	if and.IsComplete(s) {
		t.Error("AND(treasure) complete while treasure remains")
	}
	if !or.IsComplete(s) {
		t.Error("OR(treasure, enemies) should hold through the enemies branch")
	}
	if len(and.Children()) != 1 || len(or.Children()) != 2 {
		t.Errorf("children = %d/%d, want 1/2", len(and.Children()), len(or.Children()))
	}
}

func TestAtomicNames(t *testing.T) {
	got := AtomicNames()
	want := []string{"boulders", "enemies", "exit", "treasure"}
	if len(got) != len(want) {
		t.Fatalf("AtomicNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AtomicNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsCombinator(t *testing.T) {
	if !IsCombinator("AND") || !IsCombinator("OR") {
		t.Error("AND and OR must be combinators")
	}
	if IsCombinator("and") || IsCombinator("exit") {
		t.Error("combinator names are case sensitive and exclude atomics")
	}
}
