package quiz

import (
	"encoding/json"
	"testing"
)

func TestAnswer_UnmarshalShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind AnswerKind
	}{
		{"string", `"Yes"`, AnswerText},
		{"number", `2`, AnswerNumber},
		{"float", `2.5`, AnswerNumber},
		{"bool", `true`, AnswerBool},
		{"array", `["A","B"]`, AnswerList},
		{"object", `{"index":1}`, AnswerObject},
		{"null", `null`, AnswerAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Answer
			if err := json.Unmarshal([]byte(tc.raw), &a); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if a.Kind() != tc.kind {
				t.Errorf("kind = %d, want %d", a.Kind(), tc.kind)
			}
		})
	}
}

func TestAnswer_ExplicitIndex(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"index":2}`), &a); err != nil {
		t.Fatal(err)
	}
	idx, ok := a.Index()
	if !ok || idx != 2 {
		t.Errorf("Index() = %d, %v; want 2, true", idx, ok)
	}

	// A fractional index is not an index.
	if err := json.Unmarshal([]byte(`{"index":1.5}`), &a); err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Index(); ok {
		t.Error("fractional index should not resolve")
	}
}

func TestAnswer_Matches(t *testing.T) {
	if !Text("Yes").Matches("Yes") {
		t.Error("exact string should match")
	}
	if Text("Yes").Matches("No") {
		t.Error("different string should not match")
	}
	if !List("A", "C").Matches("C") {
		t.Error("list answer should match by containment")
	}
	if List("A", "C").Matches("B") {
		t.Error("list answer should not match absent member")
	}
	if Number(1).Matches("1") {
		t.Error("numeric answers never match option text")
	}
}

func TestAnswer_Truthy(t *testing.T) {
	cases := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"viewed marker", Text("viewed"), true},
		{"empty string", Text(""), false},
		{"zero", Number(0), false},
		{"nonzero", Number(3), true},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"empty list", List(), false},
		{"list", List("A"), true},
		{"absent", Answer{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.answer.Truthy(); got != tc.want {
				t.Errorf("Truthy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnswer_MarshalRoundTrip(t *testing.T) {
	for _, raw := range []string{`"Yes"`, `2`, `true`, `["A","B"]`} {
		var a Answer
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		back, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("marshal %s: %v", raw, err)
		}
		if string(back) != raw {
			t.Errorf("round trip %s = %s", raw, back)
		}
	}
}

func TestAnswerMap(t *testing.T) {
	m, err := AnswerMap([]byte(`{"q1":"Yes","q2":["A","B"],"q3":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 3 {
		t.Fatalf("len = %d, want 3", len(m))
	}
	if m["q1"].Str() != "Yes" {
		t.Errorf("q1 = %q", m["q1"].Str())
	}
	if got := m["q2"].Strings(); len(got) != 2 || got[0] != "A" {
		t.Errorf("q2 = %v", got)
	}
}
