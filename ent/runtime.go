// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizflow/ent/answerevent"
	"github.com/abhisek/quizflow/ent/recommendationevent"
	"github.com/abhisek/quizflow/ent/responseevent"
	"github.com/abhisek/quizflow/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescResponseID is the schema descriptor for response_id field.
	answereventDescResponseID := answereventFields[0].Descriptor()
	// answerevent.ResponseIDValidator is a validator for the "response_id" field. It is called by the builders before save.
	answerevent.ResponseIDValidator = answereventDescResponseID.Validators[0].(func(string) error)
	// answereventDescStepID is the schema descriptor for step_id field.
	answereventDescStepID := answereventFields[1].Descriptor()
	// answerevent.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	answerevent.StepIDValidator = answereventDescStepID.Validators[0].(func(string) error)
	// answereventDescStepType is the schema descriptor for step_type field.
	answereventDescStepType := answereventFields[3].Descriptor()
	// answerevent.StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	answerevent.StepTypeValidator = answereventDescStepType.Validators[0].(func(string) error)
	recommendationeventMixin := schema.RecommendationEvent{}.Mixin()
	recommendationeventMixinFields0 := recommendationeventMixin[0].Fields()
	_ = recommendationeventMixinFields0
	recommendationeventFields := schema.RecommendationEvent{}.Fields()
	_ = recommendationeventFields
	// recommendationeventDescTimestamp is the schema descriptor for timestamp field.
	recommendationeventDescTimestamp := recommendationeventMixinFields0[1].Descriptor()
	// recommendationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	recommendationevent.DefaultTimestamp = recommendationeventDescTimestamp.Default.(func() time.Time)
	// recommendationeventDescResponseID is the schema descriptor for response_id field.
	recommendationeventDescResponseID := recommendationeventFields[0].Descriptor()
	// recommendationevent.ResponseIDValidator is a validator for the "response_id" field. It is called by the builders before save.
	recommendationevent.ResponseIDValidator = recommendationeventDescResponseID.Validators[0].(func(string) error)
	// recommendationeventDescResultCount is the schema descriptor for result_count field.
	recommendationeventDescResultCount := recommendationeventFields[2].Descriptor()
	// recommendationevent.DefaultResultCount holds the default value on creation for the result_count field.
	recommendationevent.DefaultResultCount = recommendationeventDescResultCount.Default.(int)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescResponseID is the schema descriptor for response_id field.
	responseeventDescResponseID := responseeventFields[0].Descriptor()
	// responseevent.ResponseIDValidator is a validator for the "response_id" field. It is called by the builders before save.
	responseevent.ResponseIDValidator = responseeventDescResponseID.Validators[0].(func(string) error)
	// responseeventDescQuizSlug is the schema descriptor for quiz_slug field.
	responseeventDescQuizSlug := responseeventFields[1].Descriptor()
	// responseevent.QuizSlugValidator is a validator for the "quiz_slug" field. It is called by the builders before save.
	responseevent.QuizSlugValidator = responseeventDescQuizSlug.Validators[0].(func(string) error)
	// responseeventDescAction is the schema descriptor for action field.
	responseeventDescAction := responseeventFields[2].Descriptor()
	// responseevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	responseevent.ActionValidator = responseeventDescAction.Validators[0].(func(string) error)
	// responseeventDescStepsSeen is the schema descriptor for steps_seen field.
	responseeventDescStepsSeen := responseeventFields[3].Descriptor()
	// responseevent.DefaultStepsSeen holds the default value on creation for the steps_seen field.
	responseevent.DefaultStepsSeen = responseeventDescStepsSeen.Default.(int)
	// responseeventDescAnswersRecorded is the schema descriptor for answers_recorded field.
	responseeventDescAnswersRecorded := responseeventFields[4].Descriptor()
	// responseevent.DefaultAnswersRecorded holds the default value on creation for the answers_recorded field.
	responseevent.DefaultAnswersRecorded = responseeventDescAnswersRecorded.Default.(int)
	// responseeventDescDurationSecs is the schema descriptor for duration_secs field.
	responseeventDescDurationSecs := responseeventFields[5].Descriptor()
	// responseevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	responseevent.DefaultDurationSecs = responseeventDescDurationSecs.Default.(int)
}
