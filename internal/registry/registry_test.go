package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/star-hopper/internal/level"
)

func TestBuiltinClassicRegistered(t *testing.T) {
	if !Exists(DefaultSet) {
		t.Fatalf("%q should be registered at init", DefaultSet)
	}

	set, err := Get(DefaultSet)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if set.Len() != 8 {
		t.Errorf("classic has %d levels, expected 8", set.Len())
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-set"); !errors.Is(err, ErrUnknownSet) {
		t.Errorf("Get() = %v, expected ErrUnknownSet", err)
	}
}

func TestRegisterAndList(t *testing.T) {
	Register("zz-test", func() level.Set {
		return level.Set{Levels: []level.Definition{{ID: "only", Goal: &level.Point{}}}}
	})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q >= %q", list[i-1].ID, list[i].ID)
		}
	}

	last := list[len(list)-1]
	if last.ID != "zz-test" || last.Title != "zz-test" || last.Levels != 1 {
		t.Errorf("last entry = %+v", last)
	}

	// Factory left the ID blank; Get fills it in
	set, err := Get("zz-test")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if set.ID != "zz-test" {
		t.Errorf("set ID = %q, expected zz-test", set.ID)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(DefaultSet, level.Classic)
}

func TestGetReturnsFreshCopy(t *testing.T) {
	a, _ := Get(DefaultSet)
	a.Levels[0].Name = "mutated"

	b, _ := Get(DefaultSet)
	if b.Levels[0].Name == "mutated" {
		t.Error("Get should return an independent copy")
	}
}
