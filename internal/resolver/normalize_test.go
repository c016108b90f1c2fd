package resolver

import (
	"testing"

	"github.com/abhisek/quizflow/internal/quiz"
)

func abcQuestion() quiz.Question {
	return quiz.Question{ID: "q1", Options: []quiz.Option{{Text: "A"}, {Text: "B"}, {Text: "C"}}}
}

func TestNormalizeAnswers_StringMatch(t *testing.T) {
	got := NormalizeAnswers([]quiz.Question{abcQuestion()},
		map[string]quiz.Answer{"q1": quiz.Text("B")})
	if idx, ok := got["q1"]; !ok || idx != 1 {
		t.Fatalf("got %v, want q1→1", got)
	}
}

func TestNormalizeAnswers_UnknownStringIsUnanswered(t *testing.T) {
	got := NormalizeAnswers([]quiz.Question{abcQuestion()},
		map[string]quiz.Answer{"q1": quiz.Text("Z")})
	if _, ok := got["q1"]; ok {
		t.Fatalf("unmatched text should leave question unanswered, got %v", got)
	}
}

func TestNormalizeAnswers_NumericPrecedence(t *testing.T) {
	q := abcQuestion()
	cases := []struct {
		name  string
		value float64
		index int
		ok    bool
	}{
		// The 1-based reading wins whenever it is valid. The value 1 is the
		// known ambiguity: valid under both readings, resolved as 1-based.
		{"one is 1-based", 1, 0, true},
		{"two is 1-based", 2, 1, true},
		{"three is 1-based", 3, 2, true},
		// 0 is invalid 1-based, valid 0-based.
		{"zero falls back to 0-based", 0, 0, true},
		{"out of range both ways", 4, 0, false},
		{"negative", -1, 0, false},
		{"fractional", 1.5, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAnswers([]quiz.Question{q},
				map[string]quiz.Answer{"q1": quiz.Number(tc.value)})
			idx, ok := got["q1"]
			if ok != tc.ok || (ok && idx != tc.index) {
				t.Errorf("value %v → %d, %v; want %d, %v", tc.value, idx, ok, tc.index, tc.ok)
			}
		})
	}
}

func TestNormalizeAnswers_ExplicitIndex(t *testing.T) {
	got := NormalizeAnswers([]quiz.Question{abcQuestion()},
		map[string]quiz.Answer{"q1": quiz.IndexAnswer(2)})
	if idx, ok := got["q1"]; !ok || idx != 2 {
		t.Fatalf("got %v, want q1→2", got)
	}

	got = NormalizeAnswers([]quiz.Question{abcQuestion()},
		map[string]quiz.Answer{"q1": quiz.IndexAnswer(9)})
	if _, ok := got["q1"]; ok {
		t.Fatalf("out-of-range index should leave question unanswered, got %v", got)
	}
}

func TestNormalizeAnswers_SkipsUnansweredQuestions(t *testing.T) {
	questions := []quiz.Question{abcQuestion(), {ID: "q2", Options: []quiz.Option{{Text: "X"}}}}
	got := NormalizeAnswers(questions, map[string]quiz.Answer{"q1": quiz.Text("A")})
	if len(got) != 1 {
		t.Fatalf("got %v, want only q1", got)
	}
}
