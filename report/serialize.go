package report

import "encoding/json"

// MarshalReport serialises a Report to JSON.
func MarshalReport(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalReport deserialises a Report from JSON.
func UnmarshalReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// MarshalDifferences serialises a difference list as indented JSON, the
// form printed by the CLI when a comparison is not clean.
func MarshalDifferences(diffs []Difference) ([]byte, error) {
	return json.MarshalIndent(diffs, "", "  ")
}
