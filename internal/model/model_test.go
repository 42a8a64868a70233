package model

import (
	"encoding/json"
	"testing"
)

func TestPriority_BlankIsAbsent(t *testing.T) {
	if Priority("") != nil || Priority("   ") != nil {
		t.Fatalf("expected blank priority to be nil")
	}
	if p := Priority(" high "); p == nil || *p != "high" {
		t.Fatalf("expected trimmed priority; got %v", p)
	}
}

func TestComparePriority(t *testing.T) {
	high := Task{Priority: Priority("high")}
	low := Task{Priority: Priority("low")}
	upper := Task{Priority: Priority("Low")}
	none := Task{}

	cases := []struct {
		name string
		a, b Task
		want int
	}{
		{"byte-wise", high, low, -1},
		{"uppercase before lowercase", upper, low, -1},
		{"equal", low, Task{Priority: Priority("low")}, 0},
		{"absent last", none, low, 1},
		{"present before absent", low, none, -1},
		{"both absent", none, Task{}, 0},
	}
	for _, tc := range cases {
		got := ComparePriority(tc.a, tc.b)
		if (got < 0) != (tc.want < 0) || (got > 0) != (tc.want > 0) {
			t.Fatalf("%s: ComparePriority = %d; want sign of %d", tc.name, got, tc.want)
		}
	}
}

func TestClone_DoesNotSharePriority(t *testing.T) {
	orig := Task{ID: 1, Text: "a", Priority: Priority("high")}
	c := orig.Clone()
	*c.Priority = "low"
	if orig.PriorityLabel() != "high" {
		t.Fatalf("clone shares priority pointer")
	}
}

func TestTask_JSONOmitsAbsentPriority(t *testing.T) {
	b, err := json.Marshal(Task{ID: 5, Text: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"id":5,"text":"x","pinned":false,"completed":false}`; got != want {
		t.Fatalf("unexpected wire form:\n got %s\nwant %s", got, want)
	}
}
