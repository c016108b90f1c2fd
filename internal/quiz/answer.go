package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// AnswerKind discriminates the JSON shapes an answer can arrive in.
type AnswerKind int

const (
	AnswerAbsent AnswerKind = iota
	AnswerText
	AnswerNumber
	AnswerBool
	AnswerList
	AnswerObject
)

// Answer is a recorded answer for one step. Callers submit answers as raw
// strings, numbers, booleans, arrays (multi-select) or objects (form fields,
// or an explicit {"index": N} selection); the union folds all of those shapes
// behind one type so the engines never scatter type switches.
type Answer struct {
	kind   AnswerKind
	text   string
	number float64
	flag   bool
	list   []Answer
	fields map[string]Answer
}

// Text builds a string answer.
func Text(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

// Number builds a numeric answer.
func Number(n float64) Answer {
	return Answer{kind: AnswerNumber, number: n}
}

// Bool builds a boolean answer.
func Bool(b bool) Answer {
	return Answer{kind: AnswerBool, flag: b}
}

// List builds a multi-select answer from option texts.
func List(texts ...string) Answer {
	items := make([]Answer, len(texts))
	for i, t := range texts {
		items[i] = Text(t)
	}
	return Answer{kind: AnswerList, list: items}
}

// Object builds a structured answer from named fields.
func Object(fields map[string]Answer) Answer {
	return Answer{kind: AnswerObject, fields: fields}
}

// IndexAnswer builds the explicit {"index": N} selection shape.
func IndexAnswer(n int) Answer {
	return Object(map[string]Answer{"index": Number(float64(n))})
}

// Kind reports which shape the answer carries.
func (a Answer) Kind() AnswerKind { return a.kind }

// Present reports whether any answer was recorded at all.
func (a Answer) Present() bool { return a.kind != AnswerAbsent }

// Str returns the string payload ("" unless Kind is AnswerText).
func (a Answer) Str() string { return a.text }

// Num returns the numeric payload (0 unless Kind is AnswerNumber).
func (a Answer) Num() float64 { return a.number }

// Items returns the list payload (nil unless Kind is AnswerList).
func (a Answer) Items() []Answer { return a.list }

// Strings flattens a list answer to the texts of its string members.
func (a Answer) Strings() []string {
	out := make([]string, 0, len(a.list))
	for _, item := range a.list {
		if item.kind == AnswerText {
			out = append(out, item.text)
		}
	}
	return out
}

// Field returns a named member of an object answer.
func (a Answer) Field(name string) (Answer, bool) {
	v, ok := a.fields[name]
	return v, ok
}

// Index returns the explicit zero-based option index carried by an
// {"index": N} object answer, if the answer has that shape.
func (a Answer) Index() (int, bool) {
	if a.kind != AnswerObject {
		return 0, false
	}
	v, ok := a.fields["index"]
	if !ok || v.kind != AnswerNumber {
		return 0, false
	}
	n := v.number
	if n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// Truthy reports whether the answer satisfies a component step: any non-empty
// string (including the "viewed" marker), nonzero number, true boolean,
// non-empty list or object counts.
func (a Answer) Truthy() bool {
	switch a.kind {
	case AnswerText:
		return a.text != ""
	case AnswerNumber:
		return a.number != 0
	case AnswerBool:
		return a.flag
	case AnswerList:
		return len(a.list) > 0
	case AnswerObject:
		return len(a.fields) > 0
	}
	return false
}

// Matches reports whether the answer selects the given option text: exact
// equality for string answers, containment for multi-select lists.
func (a Answer) Matches(optionText string) bool {
	switch a.kind {
	case AnswerText:
		return a.text == optionText
	case AnswerList:
		for _, item := range a.list {
			if item.kind == AnswerText && item.text == optionText {
				return true
			}
		}
	}
	return false
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode answer: %w", err)
	}
	parsed, err := answerFromValue(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerAbsent:
		return []byte("null"), nil
	case AnswerText:
		return json.Marshal(a.text)
	case AnswerNumber:
		if a.number == math.Trunc(a.number) {
			return json.Marshal(int64(a.number))
		}
		return json.Marshal(a.number)
	case AnswerBool:
		return json.Marshal(a.flag)
	case AnswerList:
		return json.Marshal(a.list)
	case AnswerObject:
		m := make(map[string]Answer, len(a.fields))
		for k, v := range a.fields {
			m[k] = v
		}
		return json.Marshal(m)
	}
	return nil, fmt.Errorf("unknown answer kind %d", a.kind)
}

// answerFromValue maps a decoded JSON value onto the union.
func answerFromValue(v any) (Answer, error) {
	switch val := v.(type) {
	case nil:
		return Answer{}, nil
	case string:
		return Text(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return Answer{}, fmt.Errorf("numeric answer %q: %w", val, err)
		}
		return Number(f), nil
	case bool:
		return Bool(val), nil
	case []any:
		items := make([]Answer, 0, len(val))
		for _, elem := range val {
			item, err := answerFromValue(elem)
			if err != nil {
				return Answer{}, err
			}
			items = append(items, item)
		}
		return Answer{kind: AnswerList, list: items}, nil
	case map[string]any:
		fields := make(map[string]Answer, len(val))
		for k, elem := range val {
			item, err := answerFromValue(elem)
			if err != nil {
				return Answer{}, err
			}
			fields[k] = item
		}
		return Object(fields), nil
	}
	return Answer{}, fmt.Errorf("unsupported answer value %T", v)
}

// AnswerMap decodes a {questionId: answer} JSON document.
func AnswerMap(data []byte) (map[string]Answer, error) {
	var m map[string]Answer
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return m, nil
}
