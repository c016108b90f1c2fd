package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizflow/ent"
	"github.com/abhisek/quizflow/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetResponseID(data.ResponseID).
		SetStepID(data.StepID).
		SetStepIndex(data.StepIndex).
		SetStepType(data.StepType).
		SetAnswerJSON(data.AnswerJSON).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResponseAnswers(ctx context.Context, responseID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.ResponseID(responseID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	// A step answered twice keeps only the latest answer. Sequence order
	// means later events overwrite earlier ones for the same step.
	byStep := make(map[string]AnswerRecord)
	var order []string
	for _, e := range events {
		if _, ok := byStep[e.StepID]; !ok {
			order = append(order, e.StepID)
		}
		byStep[e.StepID] = AnswerRecord{
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			ResponseID: e.ResponseID,
			StepID:     e.StepID,
			StepIndex:  e.StepIndex,
			StepType:   e.StepType,
			AnswerJSON: e.AnswerJSON,
		}
	}

	records := make([]AnswerRecord, 0, len(order))
	for _, id := range order {
		records = append(records, byStep[id])
	}
	return records, nil
}
