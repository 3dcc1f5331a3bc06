package abstract

import "testing"

func TestDigestDeterministic(t *testing.T) {
	env := NewEnvironment().Bind("b", "2").Bind("a", "1")
	same := NewEnvironment().Bind("a", "1").Bind("b", "2")

	d1, err := Digest(env.Digestible())
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Digest(same.Digestible())
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Error("equal environments produced different digests")
	}
}

func TestDigestDistinguishes(t *testing.T) {
	a := NewEnvironment().Bind("x", "1")
	b := NewEnvironment().Bind("x", "2")

	d1, _ := Digest(a.Digestible())
	d2, _ := Digest(b.Digestible())
	if d1 == d2 {
		t.Error("different environments produced the same digest")
	}
}

func TestStoreDigestibleSortsValues(t *testing.T) {
	a := NewStore().Write("x", atom("1")).Write("x", atom("2"))
	b := NewStore().Write("x", atom("2")).Write("x", atom("1"))

	d1, _ := Digest(a.Digestible())
	d2, _ := Digest(b.Digestible())
	if d1 != d2 {
		t.Error("insertion order leaked into the store digest")
	}
}
