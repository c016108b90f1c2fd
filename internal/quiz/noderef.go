package quiz

import (
	"strconv"
	"strings"
)

const (
	questionNodePrefix = "question-"
	resultNodePrefix   = "result-"
	optionHandlePrefix = "option-"
)

// NodeKind discriminates the node types encoded in composite node ids.
type NodeKind int

const (
	NodeUnknown NodeKind = iota
	NodeQuestion
	NodeResult
)

// NodeRef is a composite node id parsed once at ingestion, so traversal never
// re-splits id strings.
type NodeRef struct {
	Kind       NodeKind
	QuestionID string   // set when Kind == NodeQuestion
	ResultID   ResultID // set when Kind == NodeResult and the id parsed
}

// ParseNodeRef decodes a node id of the form "question-<questionId>" or
// "result-<resultId>-<suffix>". Question ids keep everything after the
// prefix, so ids containing dashes survive. Result ids are recovered by
// splitting the remainder on "-" and taking the first numeric segment; when
// no segment is numeric the ref is still a result node but carries no id,
// which makes the branch contribute nothing during traversal.
func ParseNodeRef(id string) NodeRef {
	switch {
	case strings.HasPrefix(id, questionNodePrefix):
		return NodeRef{Kind: NodeQuestion, QuestionID: id[len(questionNodePrefix):]}
	case strings.HasPrefix(id, resultNodePrefix):
		ref := NodeRef{Kind: NodeResult}
		for _, seg := range strings.Split(id[len(resultNodePrefix):], "-") {
			if _, err := strconv.ParseInt(seg, 10, 64); err == nil {
				ref.ResultID = ParseResultID(seg)
				break
			}
		}
		return ref
	}
	return NodeRef{Kind: NodeUnknown}
}

// QuestionNodeID formats the composite node id for a question.
func QuestionNodeID(questionID string) string {
	return questionNodePrefix + questionID
}

// ParseOptionHandle decodes a "option-<N>" source handle into the canonical
// zero-based option index. ok is false for absent or malformed handles.
func ParseOptionHandle(handle string) (int, bool) {
	if !strings.HasPrefix(handle, optionHandlePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(handle[len(optionHandlePrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// OptionHandle formats the source handle for a zero-based option index.
func OptionHandle(index int) string {
	return optionHandlePrefix + strconv.Itoa(index)
}
