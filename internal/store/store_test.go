package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) (EventRepo, *Store) {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo, s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestResponseAnswersRoundTrip(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	answers := []AnswerEventData{
		{ResponseID: "r1", StepID: "step-age", StepIndex: 0, StepType: "question", AnswerJSON: `"25-34"`},
		{ResponseID: "r1", StepID: "step-goal", StepIndex: 1, StepType: "question", AnswerJSON: `["sleep","focus"]`},
		{ResponseID: "r2", StepID: "step-age", StepIndex: 0, StepType: "question", AnswerJSON: `"18-24"`},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	got, err := repo.ResponseAnswers(ctx, "r1")
	if err != nil {
		t.Fatalf("response answers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("answers = %d, want 2", len(got))
	}
	if got[0].StepID != "step-age" || got[1].StepID != "step-goal" {
		t.Errorf("step order = [%s, %s], want [step-age, step-goal]", got[0].StepID, got[1].StepID)
	}
	if got[1].AnswerJSON != `["sleep","focus"]` {
		t.Errorf("answer json = %q", got[1].AnswerJSON)
	}
}

func TestResponseAnswersKeepsLatest(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	// Answer the same step twice (the user went back and changed it).
	first := AnswerEventData{ResponseID: "r1", StepID: "step-goal", StepIndex: 1, StepType: "question", AnswerJSON: `"sleep"`}
	second := AnswerEventData{ResponseID: "r1", StepID: "step-goal", StepIndex: 1, StepType: "question", AnswerJSON: `"focus"`}
	if err := repo.AppendAnswerEvent(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	got, err := repo.ResponseAnswers(ctx, "r1")
	if err != nil {
		t.Fatalf("response answers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("answers = %d, want 1", len(got))
	}
	if got[0].AnswerJSON != `"focus"` {
		t.Errorf("answer json = %q, want the later answer", got[0].AnswerJSON)
	}
}

func TestQueryResponseSummaries(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	// Two sessions: one completed with a recommendation, one abandoned.
	events := []ResponseEventData{
		{ResponseID: "r1", QuizSlug: "wellness", Action: ActionStart},
		{ResponseID: "r1", QuizSlug: "wellness", Action: ActionComplete, StepsSeen: 4, AnswersRecorded: 3, DurationSecs: 90},
		{ResponseID: "r2", QuizSlug: "wellness", Action: ActionStart},
		{ResponseID: "r2", QuizSlug: "wellness", Action: ActionAbandon, StepsSeen: 1, AnswersRecorded: 1, DurationSecs: 12},
	}
	for i, e := range events {
		if err := repo.AppendResponseEvent(ctx, e); err != nil {
			t.Fatalf("append response %d: %v", i, err)
		}
	}
	rec := RecommendationEventData{ResponseID: "r1", ResultIDs: []string{"1", "3"}}
	if err := repo.AppendRecommendationEvent(ctx, rec); err != nil {
		t.Fatalf("append recommendation: %v", err)
	}

	sums, err := repo.QueryResponseSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("summaries = %d, want 2", len(sums))
	}

	// Newest first: r2 started after r1.
	if sums[0].ResponseID != "r2" || sums[1].ResponseID != "r1" {
		t.Fatalf("order = [%s, %s], want [r2, r1]", sums[0].ResponseID, sums[1].ResponseID)
	}
	if sums[0].Action != ActionAbandon {
		t.Errorf("r2 action = %q, want %q", sums[0].Action, ActionAbandon)
	}
	if sums[1].Action != ActionComplete {
		t.Errorf("r1 action = %q, want %q", sums[1].Action, ActionComplete)
	}
	if sums[1].AnswersRecorded != 3 {
		t.Errorf("r1 answers recorded = %d, want 3", sums[1].AnswersRecorded)
	}
	if len(sums[1].ResultIDs) != 2 || sums[1].ResultIDs[0] != "1" {
		t.Errorf("r1 result ids = %v, want [1 3]", sums[1].ResultIDs)
	}
	if sums[0].ResultIDs != nil {
		t.Errorf("r2 result ids = %v, want none", sums[0].ResultIDs)
	}
}

func TestQueryResponseSummariesFilters(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	for i, e := range []ResponseEventData{
		{ResponseID: "r1", QuizSlug: "wellness", Action: ActionStart},
		{ResponseID: "r2", QuizSlug: "skincare", Action: ActionStart},
		{ResponseID: "r3", QuizSlug: "wellness", Action: ActionStart},
	} {
		if err := repo.AppendResponseEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	sums, err := repo.QueryResponseSummaries(ctx, QueryOpts{QuizSlug: "wellness"})
	if err != nil {
		t.Fatalf("query by slug: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("wellness summaries = %d, want 2", len(sums))
	}

	sums, err = repo.QueryResponseSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("limited summaries = %d, want 1", len(sums))
	}
	if sums[0].ResponseID != "r3" {
		t.Errorf("limited result = %s, want r3 (newest)", sums[0].ResponseID)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"response_events", "answer_events", "recommendation_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
