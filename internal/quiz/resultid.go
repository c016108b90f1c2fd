package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ResultID identifies a result record. Quiz documents carry result ids as
// either JSON numbers or strings; both unmarshal to the same canonical string
// form so that ids parsed out of composite node ids compare directly.
type ResultID string

// ParseResultID canonicalizes a raw id segment. Numeric segments normalize to
// their decimal form ("010" → "10"); everything else is kept verbatim.
func ParseResultID(s string) ResultID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ResultID(strconv.FormatInt(n, 10))
	}
	return ResultID(s)
}

func (r *ResultID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty result id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ParseResultID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("result id must be a number or string: %w", err)
	}
	*r = ResultID(n.String())
	return nil
}

func (r ResultID) MarshalJSON() ([]byte, error) {
	// Numeric ids round-trip as JSON numbers, fractional ones included.
	if isJSONNumber(string(r)) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

// isJSONNumber reports whether s is a valid JSON number literal.
func isJSONNumber(s string) bool {
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}

func (r ResultID) String() string {
	return string(r)
}
