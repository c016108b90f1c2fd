package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Before   int64     // sequence < Before
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	QuizSlug string    // restrict to one quiz ("" = all)
}

// Response lifecycle actions.
const (
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionAbandon  = "abandon"
)

// ResponseEventData captures a response lifecycle event.
type ResponseEventData struct {
	ResponseID      string
	QuizSlug        string
	Action          string
	StepsSeen       int
	AnswersRecorded int
	DurationSecs    int
}

// AnswerEventData captures one recorded answer.
type AnswerEventData struct {
	ResponseID string
	StepID     string
	StepIndex  int
	StepType   string
	AnswerJSON string
}

// RecommendationEventData captures the resolver output for a response.
type RecommendationEventData struct {
	ResponseID string
	ResultIDs  []string
}

// AnswerRecord is a stored answer as returned by queries.
type AnswerRecord struct {
	Sequence   int64
	Timestamp  time.Time
	ResponseID string
	StepID     string
	StepIndex  int
	StepType   string
	AnswerJSON string
}

// ResponseSummary aggregates the stored events of one response session.
type ResponseSummary struct {
	ResponseID      string
	QuizSlug        string
	StartedAt       time.Time
	EndedAt         time.Time
	Action          string // terminal action, or "start" if still open
	AnswersRecorded int
	ResultIDs       []string
}

// EventRepo provides append and query access to response events.
type EventRepo interface {
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendRecommendationEvent(ctx context.Context, data RecommendationEventData) error

	// ResponseAnswers returns the answers of one response in step order.
	ResponseAnswers(ctx context.Context, responseID string) ([]AnswerRecord, error)

	// QueryResponseSummaries returns one summary per response session,
	// newest first.
	QueryResponseSummaries(ctx context.Context, opts QueryOpts) ([]ResponseSummary, error)
}
