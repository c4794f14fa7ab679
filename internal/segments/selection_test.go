// internal/segments/selection_test.go
package segments

import (
	"reflect"
	"testing"
)

func TestSelection_Toggle(t *testing.T) {
	tests := []struct {
		name  string
		start Selection
		id    string
		want  Selection
	}{
		{"add to empty", Selection{}, "a", Selection{"a"}},
		{"append preserves order", Selection{"a", "b"}, "c", Selection{"a", "b", "c"}},
		{"remove existing", Selection{"a", "b", "c"}, "b", Selection{"a", "c"}},
		{"remove last", Selection{"a"}, "a", Selection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Toggle(tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Toggle(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestSelection_ToggleDoesNotMutate(t *testing.T) {
	s := Selection{"a", "b", "c"}
	_ = s.Toggle("b")
	if !reflect.DeepEqual(s, Selection{"a", "b", "c"}) {
		t.Errorf("receiver mutated: %v", s)
	}
}

func TestNewSelection_Dedupes(t *testing.T) {
	got := NewSelection("a", "b", "a", "", "c", "b")
	want := Selection{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewSelection() = %v, want %v", got, want)
	}
}

func TestSelection_Resolve(t *testing.T) {
	catalog := testCatalog()

	t.Run("selection order", func(t *testing.T) {
		s := NewSelection("demo-parents", "retail-electronics")
		got := segmentIDs(s.Resolve(catalog))
		want := []string{"demo-parents", "retail-electronics"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Resolve() = %v, want %v", got, want)
		}
	})

	t.Run("unknown ids dropped", func(t *testing.T) {
		s := NewSelection("missing", "lifestyle-fitness", "also-missing")
		got := segmentIDs(s.Resolve(catalog))
		want := []string{"lifestyle-fitness"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Resolve() = %v, want %v", got, want)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		got := Selection(nil).Resolve(catalog)
		if got == nil || len(got) != 0 {
			t.Errorf("Resolve() = %v, want empty non-nil slice", got)
		}
	})
}

func TestToggleSelection(t *testing.T) {
	catalog := testCatalog()
	next, resolved := ToggleSelection(catalog, Selection{"retail-electronics"}, "in-market-autos")
	if !reflect.DeepEqual(next, Selection{"retail-electronics", "in-market-autos"}) {
		t.Errorf("selection = %v", next)
	}
	if len(resolved) != 2 || resolved[1].ID != "in-market-autos" {
		t.Errorf("resolved = %v", segmentIDs(resolved))
	}
}

func TestSelection_Equal(t *testing.T) {
	if !(Selection{"a", "b"}).Equal(Selection{"b", "a"}) {
		t.Error("Equal() should ignore order")
	}
	if (Selection{"a"}).Equal(Selection{"a", "b"}) {
		t.Error("Equal() with different sizes should be false")
	}
	if (Selection{"a", "c"}).Equal(Selection{"a", "b"}) {
		t.Error("Equal() with different ids should be false")
	}
}
