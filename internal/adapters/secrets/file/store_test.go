package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionKey = "skycircle/session"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := `{"did":"did:plc:alice","accessJwt":"a","refreshJwt":"r"}`

	require.NoError(t, store.Put(context.Background(), sessionKey, want))
	require.NoError(t, store.Put(context.Background(), sessionKey, want+" "))

	got, err := store.Get(context.Background(), sessionKey)
	require.NoError(t, err)
	assert.Equal(t, want+" ", got)

	info, err := os.Stat(filepath.Join(root, sessionKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Join(root, "skycircle"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not linger")
}

func TestStoreGetMissingSecretIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), sessionKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), sessionKey))
	require.NoError(t, store.Delete(context.Background(), sessionKey))
}

func TestStoreGetRefusesSharedSecretFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, store.Put(context.Background(), sessionKey, "token"))
	require.NoError(t, os.Chmod(filepath.Join(root, sessionKey), 0o644))

	_, err := store.Get(context.Background(), sessionKey)
	require.ErrorIs(t, err, ErrInsecurePermissions)
	assert.ErrorContains(t, err, "0644")
}

func TestStoreKeysBecomeNestedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "skycircle/./session", "token"))

	data, err := os.ReadFile(filepath.Join(root, "skycircle", "session"))
	require.NoError(t, err)
	assert.Equal(t, "token", string(data))

	info, err := os.Stat(filepath.Join(root, "skycircle"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(storeDirMode), info.Mode().Perm())
}
