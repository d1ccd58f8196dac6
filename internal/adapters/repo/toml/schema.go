package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Packs   []packSchema `toml:"packs"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported packs schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type packSchema struct {
	URI         string `toml:"uri"`
	ListURI     string `toml:"list_uri"`
	URL         string `toml:"url"`
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Creator     string `toml:"creator"`
	Members     int    `toml:"members"`
	Skipped     int    `toml:"skipped"`
	CreatedAt   string `toml:"created_at"`
}
