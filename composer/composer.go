// Package composer reads PSR-4 autoload mappings out of a project's
// composer.json so generated files land where the autoloader expects them.
//
// composer.json is decoded with encoding/json directly rather than through
// the config layer: PSR-4 prefixes are case-sensitive map keys.
package composer

import (
	"encoding/json"
	"os"

	"github.com/nexus4812/php-class-gen/errors"
)

type composerFile struct {
	Autoload    autoloadSection `json:"autoload"`
	AutoloadDev autoloadSection `json:"autoload-dev"`
}

type autoloadSection struct {
	Psr4 map[string]psr4Dirs `json:"psr-4"`
}

// psr4Dirs tolerates both forms composer allows: a single directory string
// or an array of directories. Only the first directory is used for output
// resolution; generation targets one canonical location per prefix.
type psr4Dirs []string

func (d *psr4Dirs) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = psr4Dirs{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*d = many
	return nil
}

// Mappings holds the two PSR-4 tiers read from composer.json. The
// autoload-dev section becomes the priority tier so a dev mapping of the
// same prefix (the usual Tests\ arrangement) wins over the regular one.
type Mappings struct {
	Normal   map[string]string
	Priority map[string]string
}

// Load reads PSR-4 mappings from the composer.json at path.
func Load(path string) (*Mappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Parse(data, path)
}

// Parse decodes composer.json content. path is used in error messages only.
func Parse(data []byte, path string) (*Mappings, error) {
	var file composerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfigError("invalid composer.json at %s: %v", path, err)
	}

	return &Mappings{
		Normal:   flatten(file.Autoload.Psr4),
		Priority: flatten(file.AutoloadDev.Psr4),
	}, nil
}

func flatten(section map[string]psr4Dirs) map[string]string {
	out := make(map[string]string, len(section))
	for prefix, dirs := range section {
		if len(dirs) == 0 || dirs[0] == "" {
			continue
		}
		out[prefix] = dirs[0]
	}
	return out
}
