package cities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/cities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_BuiltinSample(t *testing.T) {
	dir, err := cities.Load("")
	require.NoError(t, err)

	pc, ok := dir.Lookup("Gent")
	require.True(t, ok)
	require.Equal(t, "9000", pc)

	pc, ok = dir.Lookup("Sint-Niklaas")
	require.True(t, ok)
	require.Equal(t, "9100", pc)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	dir, err := cities.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)

	pc, ok := dir.Lookup("Antwerpen")
	require.True(t, ok)
	require.Equal(t, "2000", pc)
}

func TestLoad_CSVWithHeader(t *testing.T) {
	path := writeFile(t, "steden.csv", "postcode,stad\n9820,Merelbeke\n8510,Marke\n")

	dir, err := cities.Load(path)
	require.NoError(t, err)

	pc, ok := dir.Lookup("Merelbeke")
	require.True(t, ok)
	require.Equal(t, "9820", pc)

	_, ok = dir.Lookup("Gent")
	require.False(t, ok)
}

func TestLoad_Semicolon(t *testing.T) {
	path := writeFile(t, "steden.txt", "Merelbeke;9820\nMarke;8510\n\n")

	dir, err := cities.Load(path)
	require.NoError(t, err)

	pc, ok := dir.Lookup("Marke")
	require.True(t, ok)
	require.Equal(t, "8510", pc)
}

func TestAutofill(t *testing.T) {
	dir, err := cities.Load("")
	require.NoError(t, err)

	// Fills only when the field is still empty.
	require.Equal(t, "9000", dir.Autofill("Gent", ""))
	require.Equal(t, "9050", dir.Autofill("Gent", "9050"))

	// An unknown city leaves the field untouched.
	require.Equal(t, "", dir.Autofill("Atlantis", ""))
}

func TestNames_Sorted(t *testing.T) {
	dir, err := cities.Load("")
	require.NoError(t, err)

	names := dir.Names()
	require.NotEmpty(t, names)
	require.Equal(t, "Aalst", names[0])
	require.Contains(t, names, "Kortrijk")
}
