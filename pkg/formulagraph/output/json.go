package output

import (
	"encoding/json"

	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/models"
)

// ToJSON serializes an analysis report.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
