package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/agbru/kepler/internal/errors"
	"github.com/agbru/kepler/internal/kepler"
)

// fileBody is the on-disk form of a body.
type fileBody struct {
	Name          string  `toml:"name" json:"name"`
	Mass          float64 `toml:"mass" json:"mass"`
	SemiMajorAxis float64 `toml:"semi_major_axis" json:"semi_major_axis"`
}

// fileDataset is the on-disk form of a dataset.
//
//	[central]
//	name = "Sun"
//	mass = 1.989e30
//
//	[[bodies]]
//	name = "Earth"
//	mass = 5.9723e24
//	semi_major_axis = 149.598e9
type fileDataset struct {
	Central *struct {
		Name string  `toml:"name" json:"name"`
		Mass float64 `toml:"mass" json:"mass"`
	} `toml:"central" json:"central"`
	Bodies []fileBody `toml:"bodies" json:"bodies"`
}

// Load reads a dataset from a .toml or .json file. A missing central body
// defaults to the Sun. Body order is preserved.
//
// Values are not range-checked here; the calculator rejects non-physical
// masses and axes.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, apperrors.NewConfigError("cannot read dataset %s: %v", path, err)
	}
	return Parse(filepath.Base(path), data)
}

// Parse decodes a dataset. The format is chosen from name's extension.
func Parse(name string, data []byte) (Dataset, error) {
	var raw fileDataset
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Dataset{}, apperrors.NewConfigError("invalid TOML dataset %s: %v", name, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Dataset{}, apperrors.NewConfigError("invalid JSON dataset %s: %v", name, err)
		}
	default:
		return Dataset{}, apperrors.NewConfigError("unsupported dataset format %q (want .toml or .json)", ext)
	}

	if len(raw.Bodies) == 0 {
		return Dataset{}, apperrors.NewConfigError("dataset %s lists no bodies", name)
	}

	ds := Dataset{
		Name:    strings.TrimSuffix(name, filepath.Ext(name)),
		Central: Sun,
		Bodies:  make([]kepler.Body, len(raw.Bodies)),
	}
	if raw.Central != nil {
		ds.Central = kepler.CentralBody{Name: raw.Central.Name, Mass: raw.Central.Mass}
	}
	for i, b := range raw.Bodies {
		bodyName := b.Name
		if bodyName == "" {
			bodyName = fmt.Sprintf("body-%d", i+1)
		}
		ds.Bodies[i] = kepler.Body{Name: bodyName, Mass: b.Mass, SemiMajorAxis: b.SemiMajorAxis}
	}
	return ds, nil
}
