package contractors

import (
	"os"

	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// SeedFile is the layout of a contractor seed file.
type SeedFile struct {
	Contractors []types.Contractor `yaml:"contractors"`
}

// LoadSeed reads and validates a YAML seed file.
func LoadSeed(path string) ([]types.Contractor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "contractors: read seed %s", path)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed content. Records are checked in order
// and the first invalid one fails the whole file.
func ParseSeed(data []byte) ([]types.Contractor, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, eris.Wrap(err, "contractors: parse seed")
	}
	for i := range seed.Contractors {
		if err := seed.Contractors[i].Validate(); err != nil {
			return nil, eris.Wrapf(err, "contractors: seed entry %d (%s)", i, seed.Contractors[i].Name)
		}
	}
	return seed.Contractors, nil
}
