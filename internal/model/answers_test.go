package model

import (
	"testing"
)

func TestReplaceKeepsSingleSelection(t *testing.T) {
	m := make(AnswerMap)
	m.Replace("q1", 0)
	m.Replace("q1", 3)

	if got := m.Selected("q1"); len(got) != 1 || got[0] != 3 {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	m := make(AnswerMap)
	m.Toggle("q1", 2)
	if got := m.Selected("q1"); len(got) != 1 || got[0] != 2 {
		t.Fatalf("after toggle on: got %v, want [2]", got)
	}

	m.Toggle("q1", 2)
	if got := m.Selected("q1"); len(got) != 0 {
		t.Errorf("after toggle off: got %v, want empty", got)
	}
}

func TestToggleRemovesFromMiddle(t *testing.T) {
	m := make(AnswerMap)
	m.Toggle("q1", 0)
	m.Toggle("q1", 1)
	m.Toggle("q1", 2)
	m.Toggle("q1", 1)

	got := m.Selected("q1")
	if len(got) != 2 {
		t.Fatalf("got %v, want two selections", got)
	}
	for _, idx := range got {
		if idx == 1 {
			t.Errorf("index 1 should have been removed: %v", got)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	m := AnswerMap{"q1": {0, 1}}
	frozen := m.Clone()

	m.Toggle("q1", 2)
	m.Toggle("q2", 0)

	if got := frozen.Selected("q1"); len(got) != 2 {
		t.Errorf("clone mutated through original: %v", got)
	}
	if got := frozen.Selected("q2"); len(got) != 0 {
		t.Errorf("new key leaked into clone: %v", got)
	}
}

func TestJSONRoundTripNormalizesOrder(t *testing.T) {
	m := AnswerMap{"q1": {3, 0, 2}}

	raw, err := m.ToJSON()
	if err != nil {
		t.Fatalf("serializing: %v", err)
	}
	if string(raw) != `{"q1":[0,2,3]}` {
		t.Errorf("snapshot not sorted: %s", raw)
	}

	restored, err := AnswerMapFromJSON(raw)
	if err != nil {
		t.Fatalf("restoring: %v", err)
	}
	if got := restored.Selected("q1"); len(got) != 3 {
		t.Errorf("restored selection: got %v", got)
	}
}

func TestAnswerMapFromEmptyJSON(t *testing.T) {
	m, err := AnswerMapFromJSON(nil)
	if err != nil {
		t.Fatalf("restoring empty snapshot: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("got %v, want empty map", m)
	}
}
