package logic

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Etch-Social/etch-local/dal"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBackend is an in-memory settings store whose failure can be toggled,
// standing in for the sqlite repo.
type memBackend struct {
	vals   map[string]string
	broken bool
}

func newMemBackend() *memBackend {
	return &memBackend{vals: make(map[string]string)}
}

func (mb *memBackend) GetSetting(name string) (string, bool, error) {
	if mb.broken {
		return "", false, errors.New("database is locked")
	}
	val, found := mb.vals[name]
	return val, found, nil
}

func (mb *memBackend) SetSetting(name, val string) error {
	if mb.broken {
		return errors.New("database is locked")
	}
	mb.vals[name] = val
	return nil
}

func (mb *memBackend) RemoveSetting(name string) error {
	if mb.broken {
		return errors.New("database is locked")
	}
	delete(mb.vals, name)
	return nil
}

func setupSettingsTest(t *testing.T) (*memBackend, ISettings) {
	t.Helper()
	primary := newMemBackend()
	cfg := &shared.Config{EnvFile: filepath.Join(t.TempDir(), "etch.env")}
	fallback := dal.NewEnvFileStore(cfg, nopLogger{})
	st := newSettingsWithBackends(primary, fallback)
	return primary, st
}

func newSettingsWithBackends(primary, fallback dal.ISettingsBackend) ISettings {
	return &settings{logger: nopLogger{}, primary: primary, fallback: fallback}
}

func Test_Settings_RoundTrip(t *testing.T) {

	_, st := setupSettingsTest(t)

	require.NoError(t, st.Set("TEST_SIGNING_KEY", "abc123"))

	val, found, err := st.Get("TEST_SIGNING_KEY")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123", val)
}

func Test_Settings_MissingIsNotAnError(t *testing.T) {

	_, st := setupSettingsTest(t)

	_, found, err := st.Get("TEST_NEVER_SET")
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_Settings_Remove(t *testing.T) {

	_, st := setupSettingsTest(t)

	require.NoError(t, st.Set("TEST_TO_REMOVE", "x"))
	require.NoError(t, st.Remove("TEST_TO_REMOVE"))

	_, found, err := st.Get("TEST_TO_REMOVE")
	require.NoError(t, err)
	assert.False(t, found)
}

// A value saved while the database is healthy must still be readable after
// the database goes away mid-session.
func Test_Settings_SurvivesPrimaryFailure(t *testing.T) {

	primary, st := setupSettingsTest(t)

	require.NoError(t, st.Set("TEST_SIGNING_KEY", "abc123"))
	primary.broken = true

	val, found, err := st.Get("TEST_SIGNING_KEY")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123", val)
}

func Test_Settings_WritesLandInFallbackWhenPrimaryIsDown(t *testing.T) {

	primary, st := setupSettingsTest(t)
	primary.broken = true

	require.NoError(t, st.Set("TEST_SIGNING_KEY", "xyz789"))

	val, found, err := st.Get("TEST_SIGNING_KEY")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "xyz789", val)

	// The value never reached the primary
	primary.broken = false
	_, found, err = primary.GetSetting("TEST_SIGNING_KEY")
	require.NoError(t, err)
	assert.False(t, found)
}

// Arweave keys are multi-line JWK documents; the env-file fallback must
// preserve them byte for byte.
func Test_Settings_MultilineValueRoundTrips(t *testing.T) {

	primary, st := setupSettingsTest(t)
	jwk := "{\n  \"kty\": \"RSA\",\n  \"n\": \"abc\\def\"\n}"

	require.NoError(t, st.Set("TEST_ARWEAVE_KEY", jwk))
	primary.broken = true

	val, found, err := st.Get("TEST_ARWEAVE_KEY")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, jwk, val)
}
