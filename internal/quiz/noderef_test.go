package quiz

import "testing"

func TestParseNodeRef(t *testing.T) {
	cases := []struct {
		id         string
		kind       NodeKind
		questionID string
		resultID   ResultID
	}{
		{"question-7", NodeQuestion, "7", ""},
		{"question-q1", NodeQuestion, "q1", ""},
		{"question-hair-loss-1", NodeQuestion, "hair-loss-1", ""},
		{"result-3-1699999", NodeResult, "", "3"},
		{"result-10-x", NodeResult, "", "10"},
		{"result-x-12-y", NodeResult, "", "12"},
		{"result-007", NodeResult, "", "7"},
		{"result-abc-def", NodeResult, "", ""},
		{"result-", NodeResult, "", ""},
		{"something-else", NodeUnknown, "", ""},
		{"", NodeUnknown, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			ref := ParseNodeRef(tc.id)
			if ref.Kind != tc.kind {
				t.Fatalf("kind = %d, want %d", ref.Kind, tc.kind)
			}
			if ref.QuestionID != tc.questionID {
				t.Errorf("questionID = %q, want %q", ref.QuestionID, tc.questionID)
			}
			if ref.ResultID != tc.resultID {
				t.Errorf("resultID = %q, want %q", ref.ResultID, tc.resultID)
			}
		})
	}
}

func TestParseOptionHandle(t *testing.T) {
	cases := []struct {
		handle string
		index  int
		ok     bool
	}{
		{"option-0", 0, true},
		{"option-12", 12, true},
		{"option--1", 0, false},
		{"option-x", 0, false},
		{"option-", 0, false},
		{"", 0, false},
		{"handle-1", 0, false},
	}
	for _, tc := range cases {
		idx, ok := ParseOptionHandle(tc.handle)
		if ok != tc.ok || idx != tc.index {
			t.Errorf("ParseOptionHandle(%q) = %d, %v; want %d, %v", tc.handle, idx, ok, tc.index, tc.ok)
		}
	}
}

func TestOptionHandle_RoundTrip(t *testing.T) {
	idx, ok := ParseOptionHandle(OptionHandle(4))
	if !ok || idx != 4 {
		t.Errorf("round trip = %d, %v", idx, ok)
	}
}
