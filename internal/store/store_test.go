package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/projexts/projexts/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "shortcuts.json"))
}

// --- Load Tests ---

func TestStore_Load_MissingFile_IsEmpty(t *testing.T) {
	st := newStore(t)

	shortcuts, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}

func TestStore_Load_EmptyFile_IsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	shortcuts, err := store.New(path).Load()
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}

func TestStore_Load_CorruptFile_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := store.New(path).Load()
	assert.Error(t, err)
}

// --- Add Tests ---

func TestStore_Add_ThenList_IncludesItOnce(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.Add("build", "make", []string{"-j8"}))

	shortcuts, err := st.List()
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, "build", shortcuts[0].Name)
	assert.Equal(t, "make", shortcuts[0].Command)
	assert.Equal(t, []string{"-j8"}, shortcuts[0].Args)
}

func TestStore_Add_Duplicate_FailsAndLeavesStoreUnchanged(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("build", "make", nil))

	err := st.Add("build", "ninja", nil)
	assert.ErrorIs(t, err, store.ErrExists)

	s, err := st.Get("build")
	require.NoError(t, err)
	assert.Equal(t, "make", s.Command, "duplicate add must not overwrite")
}

func TestStore_Add_PreservesInsertionOrder(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("charlie", "c", nil))
	require.NoError(t, st.Add("alpha", "a", nil))
	require.NoError(t, st.Add("bravo", "b", nil))

	shortcuts, err := st.List()
	require.NoError(t, err)
	require.Len(t, shortcuts, 3)
	assert.Equal(t, "charlie", shortcuts[0].Name)
	assert.Equal(t, "alpha", shortcuts[1].Name)
	assert.Equal(t, "bravo", shortcuts[2].Name)
}

// --- Update Tests ---

func TestStore_Update_ReplacesCommandAndArgs(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("build", "make", []string{"-j8"}))

	require.NoError(t, st.Update("build", "ninja", []string{"-C", "out"}))

	s, err := st.Get("build")
	require.NoError(t, err)
	assert.Equal(t, "ninja", s.Command)
	assert.Equal(t, []string{"-C", "out"}, s.Args)
}

func TestStore_Update_KeepsPosition(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("one", "a", nil))
	require.NoError(t, st.Add("two", "b", nil))

	require.NoError(t, st.Update("one", "c", nil))

	shortcuts, err := st.List()
	require.NoError(t, err)
	assert.Equal(t, "one", shortcuts[0].Name)
	assert.Equal(t, "c", shortcuts[0].Command)
}

func TestStore_Update_Missing_FailsAndLeavesStoreUnchanged(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("build", "make", nil))

	err := st.Update("deploy", "kubectl", nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	shortcuts, err := st.List()
	require.NoError(t, err)
	assert.Len(t, shortcuts, 1)
}

// --- Remove Tests ---

func TestStore_Remove_ThenGet_NotFound(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("build", "make", nil))

	require.NoError(t, st.Remove("build"))

	_, err := st.Get("build")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Remove_Missing_Fails(t *testing.T) {
	st := newStore(t)

	err := st.Remove("build")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Remove_KeepsOtherEntries(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("one", "a", nil))
	require.NoError(t, st.Add("two", "b", nil))
	require.NoError(t, st.Add("three", "c", nil))

	require.NoError(t, st.Remove("two"))

	shortcuts, err := st.List()
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)
	assert.Equal(t, "one", shortcuts[0].Name)
	assert.Equal(t, "three", shortcuts[1].Name)
}

// --- Get Tests ---

func TestStore_Get_Missing_NotFound(t *testing.T) {
	st := newStore(t)

	_, err := st.Get("build")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// --- Reset Tests ---

func TestStore_Reset_ThenList_IsEmpty(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("build", "make", nil))

	require.NoError(t, st.Reset())

	shortcuts, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}

func TestStore_Reset_IsIdempotent(t *testing.T) {
	st := newStore(t)

	require.NoError(t, st.Reset())
	require.NoError(t, st.Reset())
}

// --- Persistence Tests ---

func TestStore_RoundTrip_AcrossStoreValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, store.New(path).Add("serve", "npm", []string{"run", "dev"}))

	// A fresh Store value sees the same data: the file is the sole
	// persistence.
	s, err := store.New(path).Get("serve")
	require.NoError(t, err)
	assert.Equal(t, "npm", s.Command)
	assert.Equal(t, []string{"run", "dev"}, s.Args)
}

func TestStore_FileFormat_IsJSONArrayWithOriginalFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	require.NoError(t, store.New(path).Add("build", "make", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"project_name": "build"`)
	assert.Contains(t, string(data), `"run_command": "make"`)
	assert.Equal(t, byte('['), data[0], "store file should be a JSON array")
}
