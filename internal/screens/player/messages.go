package player

import "github.com/abhisek/quizflow/internal/quiz"

// startedMsg is sent once the response start event has been persisted.
type startedMsg struct {
	Err error
}

// resolvedMsg carries the recommendation output when the quiz finishes.
type resolvedMsg struct {
	Results []quiz.Result
	Err     error
}

// quizDoneMsg triggers the end-of-quiz flow.
type quizDoneMsg struct{}
