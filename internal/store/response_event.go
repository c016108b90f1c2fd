package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizflow/ent"
	"github.com/abhisek/quizflow/ent/recommendationevent"
	"github.com/abhisek/quizflow/ent/responseevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponseEvent(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetResponseID(data.ResponseID).
		SetQuizSlug(data.QuizSlug).
		SetAction(data.Action).
		SetStepsSeen(data.StepsSeen).
		SetAnswersRecorded(data.AnswersRecorded).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRecommendationEvent(ctx context.Context, data RecommendationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	resultIDs := data.ResultIDs
	if resultIDs == nil {
		resultIDs = []string{}
	}

	_, err = r.client.RecommendationEvent.Create().
		SetSequence(seqNum).
		SetResponseID(data.ResponseID).
		SetResultIds(resultIDs).
		SetResultCount(len(resultIDs)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save recommendation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResponseSummaries(ctx context.Context, opts QueryOpts) ([]ResponseSummary, error) {
	query := r.client.ResponseEvent.Query().
		Order(ent.Asc(responseevent.FieldSequence))

	if opts.After > 0 {
		query = query.Where(responseevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(responseevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(responseevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(responseevent.TimestampLTE(opts.To))
	}
	if opts.QuizSlug != "" {
		query = query.Where(responseevent.QuizSlug(opts.QuizSlug))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}

	// Fold lifecycle events into one summary per response id.
	byID := make(map[string]*ResponseSummary)
	var order []string
	for _, e := range events {
		sum, ok := byID[e.ResponseID]
		if !ok {
			sum = &ResponseSummary{ResponseID: e.ResponseID, QuizSlug: e.QuizSlug, Action: ActionStart}
			byID[e.ResponseID] = sum
			order = append(order, e.ResponseID)
		}
		switch e.Action {
		case ActionStart:
			sum.StartedAt = e.Timestamp
		case ActionComplete, ActionAbandon:
			sum.EndedAt = e.Timestamp
			sum.Action = e.Action
			sum.AnswersRecorded = e.AnswersRecorded
		}
	}

	for id, sum := range byID {
		rec, err := r.client.RecommendationEvent.Query().
			Where(recommendationevent.ResponseID(id)).
			Order(ent.Desc(recommendationevent.FieldSequence)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("query recommendation event: %w", err)
		}
		sum.ResultIDs = rec.ResultIds
	}

	// Newest first.
	summaries := make([]ResponseSummary, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		summaries = append(summaries, *byID[order[i]])
	}
	if opts.Limit > 0 && len(summaries) > opts.Limit {
		summaries = summaries[:opts.Limit]
	}
	return summaries, nil
}
