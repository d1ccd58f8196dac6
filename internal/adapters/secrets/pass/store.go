package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
)

// ErrUnavailable means pass cannot be used on this machine: the binary is
// missing or the password store was never initialized.
var ErrUnavailable = errors.New("pass command unavailable")

const (
	notInStoreMarker     = "is not in the password store"
	notInitializedMarker = "pass init"
	storeDirEnv          = "PASSWORD_STORE_DIR"
)

type invocation struct {
	args  []string
	input string
	env   []string
}

type runFunc func(ctx context.Context, inv invocation) (stdout string, stderr string, err error)

// Store keeps secrets in the user's pass(1) password store. Each secret is a
// multi-line entry so JSON payloads survive untouched.
type Store struct {
	run runFunc
	dir string
}

var _ ports.SecretStore = (*Store)(nil)

// NewStore uses the password store in dir, or pass's own default when dir is
// empty.
func NewStore(dir string) *Store {
	return &Store{run: runPassCommand, dir: strings.TrimSpace(dir)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := entryName(key)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, s.invocation(value+"\n", "insert", "-m", "-f", entry))
	if err != nil {
		return formatError("put", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	entry, err := entryName(key)
	if err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, s.invocation("", "show", entry))
	if err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return "", fmt.Errorf("pass get %q: %w", entry, domain.ErrSecretNotFound)
		}
		return "", formatError("get", entry, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

// Delete removes key. A key that was never stored is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := entryName(key)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, s.invocation("", "rm", "-f", entry))
	if err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return nil
		}
		return formatError("delete", entry, err, stderr)
	}

	return nil
}

func (s *Store) invocation(input string, args ...string) invocation {
	inv := invocation{args: args, input: input}
	if s.dir != "" {
		inv.env = []string{storeDirEnv + "=" + s.dir}
	}
	return inv
}

// entryName cleans key into a pass entry path and rejects keys that would
// escape the store.
func entryName(key string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(key), "/")
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid secret key %q", key)
	}
	return cleaned, nil
}

func runPassCommand(ctx context.Context, inv invocation) (string, string, error) {
	binary, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, binary, inv.args...)
	if inv.input != "" {
		cmd.Stdin = strings.NewReader(inv.input)
	}
	if len(inv.env) > 0 {
		cmd.Env = append(os.Environ(), inv.env...)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if strings.Contains(stderr, notInitializedMarker) {
		return fmt.Errorf("pass %s %q: %w: password store is not initialized", op, entry, ErrUnavailable)
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
