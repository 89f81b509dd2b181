package output

import (
	"encoding/json"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
)

// ToJSON serializes an evaluated grid to JSON.
func ToJSON(g *models.ResultGrid, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(g, "", "  ")
	}
	return json.Marshal(g)
}
