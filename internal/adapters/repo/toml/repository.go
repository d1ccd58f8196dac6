package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	packsPathKey    = "packs.path"
	packsFileMode   = 0o600
	packsDirMode    = 0o700
	tempFilePattern = ".packs-*.toml.tmp"
)

// Repository is the local ledger of published starter packs.
type Repository struct {
	packsPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PackRepository = (*Repository)(nil)

// NewRepository opens the ledger at the packs.path key of cfg. The file is
// created on first save.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	packsPath := cfg.GetString(packsPathKey)
	if packsPath == "" {
		return nil, errors.New("packs path is empty")
	}
	packsPath, err := normalizePacksPath(packsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{packsPath: packsPath, mu: lockForPath(packsPath)}, nil
}

// Save inserts pack or replaces the entry with the same URI.
func (r *Repository) Save(ctx context.Context, pack domain.StarterPack) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pack.URI == "" {
		return errors.New("starter pack uri is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(pack)
	updated := false
	for i := range file.Packs {
		if file.Packs[i].URI == encoded.URI {
			file.Packs[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Packs = append(file.Packs, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByURI(ctx context.Context, uri string) (domain.StarterPack, error) {
	if err := ctx.Err(); err != nil {
		return domain.StarterPack{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.StarterPack{}, err
	}

	for _, entry := range file.Packs {
		if entry.URI == uri {
			return fromSchema(entry), nil
		}
	}

	return domain.StarterPack{}, domain.ErrPackNotFound
}

// List returns every recorded pack, newest first.
func (r *Repository) List(ctx context.Context) ([]domain.StarterPack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	packs := make([]domain.StarterPack, 0, len(file.Packs))
	for _, entry := range file.Packs {
		packs = append(packs, fromSchema(entry))
	}
	sort.SliceStable(packs, func(i, j int) bool {
		return packs[i].CreatedAt.After(packs[j].CreatedAt)
	})

	return packs, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.packsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read packs file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode packs file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePacksPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve packs path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.packsPath), packsDirMode); err != nil {
		return fmt.Errorf("create packs directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode packs file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.packsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp packs file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp packs file: %w", err)
	}

	if err := tempFile.Chmod(packsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp packs file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp packs file: %w", err)
	}

	if err := os.Rename(tempName, r.packsPath); err != nil {
		return fmt.Errorf("replace packs file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.packsPath, packsFileMode); err != nil {
		return fmt.Errorf("chmod packs file: %w", err)
	}

	return nil
}

func toSchema(pack domain.StarterPack) packSchema {
	return packSchema{
		URI:         pack.URI,
		ListURI:     pack.ListURI,
		URL:         pack.URL,
		Name:        pack.Name,
		Description: pack.Description,
		Creator:     pack.Creator,
		Members:     pack.Members,
		Skipped:     pack.Skipped,
		CreatedAt:   formatTime(pack.CreatedAt),
	}
}

func fromSchema(pack packSchema) domain.StarterPack {
	return domain.StarterPack{
		URI:         pack.URI,
		ListURI:     pack.ListURI,
		URL:         pack.URL,
		Name:        pack.Name,
		Description: pack.Description,
		Creator:     pack.Creator,
		Members:     pack.Members,
		Skipped:     pack.Skipped,
		CreatedAt:   parseTime(pack.CreatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
