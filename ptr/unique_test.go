package ptr

import (
	"testing"

	"github.com/comalice/stlx/testutil"
)

func TestUnique(t *testing.T) {
	var tr testutil.Tracker
	x, y := tr.New(), tr.New()
	u := NewUnique(x)
	if !u.Valid() || u.Get() != x {
		t.Fatal("NewUnique")
	}

	u.Reset(y)
	if tr.Count(x.ID) != 1 || u.Get() != y {
		t.Error("Reset must destroy the old pointee")
	}
	u.Reset(y)
	if tr.Count(y.ID) != 0 {
		t.Error("resetting to the same pointee must not destroy it")
	}

	m := u.Move()
	if u.Valid() || m.Get() != y {
		t.Error("Move")
	}

	var other Unique[testutil.Tracked]
	other.Swap(m)
	if m.Valid() || other.Get() != y {
		t.Error("Swap")
	}

	if got := other.Release(); got != y || other.Valid() || tr.Count(y.ID) != 0 {
		t.Error("Release must hand the value back without destroying it")
	}

	z := tr.New()
	d := NewUnique(z, WithDeleter(tr.Deleter()))
	d.Reset(nil)
	if tr.Count(z.ID) != 1 || d.Valid() {
		t.Error("Reset(nil) must destroy through the configured deleter")
	}
}
