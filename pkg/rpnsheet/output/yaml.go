package output

import (
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes an evaluated grid to YAML.
func ToYAML(g *models.ResultGrid) ([]byte, error) {
	return yaml.Marshal(g)
}
