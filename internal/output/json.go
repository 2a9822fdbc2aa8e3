package output

import (
	"encoding/json"
)

// JSONFormatter emits the full report as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (j *JSONFormatter) Name() string { return "json" }

func (j *JSONFormatter) Format(report *Report) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
