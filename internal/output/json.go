package output

import (
	"encoding/json"
	"fmt"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
)

// JSONFormatter renders the full projection set as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format serializes the whole set, per-asset detail included.
func (f *JSONFormatter) Format(set *calculation.ProjectionSet) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Indent {
		data, err = json.MarshalIndent(set, "", "  ")
	} else {
		data, err = json.Marshal(set)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal projection: %w", err)
	}
	return string(data), nil
}
