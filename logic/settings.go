package logic

import (
	"github.com/Etch-Social/etch-local/dal"
	"github.com/Etch-Social/etch-local/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_settings.go -package mocks github.com/Etch-Social/etch-local/logic ISettings

// ISettings is the uniform get/set/remove surface over the two backing
// stores. Reads and writes try the database first and fall back to the
// env-style file when it errors; the choice is made once per call.
// Validation of the values is the caller's business, not the store's.
type ISettings interface {
	Get(name string) (val string, found bool, err error)
	Set(name, val string) error
	Remove(name string) error
}

type settings struct {
	logger   shared.ILogger
	primary  dal.ISettingsBackend
	fallback dal.ISettingsBackend
}

func NewSettings(logger shared.ILogger, repo dal.IRepo, fallback dal.ISettingsBackend) ISettings {
	return &settings{
		logger:   logger,
		primary:  repo,
		fallback: fallback,
	}
}

func (st *settings) Get(name string) (string, bool, error) {
	val, found, err := st.primary.GetSetting(name)
	if err == nil {
		return val, found, nil
	}
	st.logger.Warnf("Primary settings store failed to get '%s', using fallback: %v", name, err)
	return st.fallback.GetSetting(name)
}

// Writes are mirrored into the fallback best-effort, so a value saved while
// the database is healthy is still readable after a mid-session switch.
func (st *settings) Set(name, val string) error {
	err := st.primary.SetSetting(name, val)
	if err != nil {
		st.logger.Warnf("Primary settings store failed to set '%s', using fallback: %v", name, err)
		return st.fallback.SetSetting(name, val)
	}
	if fbErr := st.fallback.SetSetting(name, val); fbErr != nil {
		st.logger.Warnf("Fallback settings store failed to mirror '%s': %v", name, fbErr)
	}
	return nil
}

func (st *settings) Remove(name string) error {
	err := st.primary.RemoveSetting(name)
	if err != nil {
		st.logger.Warnf("Primary settings store failed to remove '%s', using fallback: %v", name, err)
		return st.fallback.RemoveSetting(name)
	}
	if fbErr := st.fallback.RemoveSetting(name); fbErr != nil {
		st.logger.Warnf("Fallback settings store failed to mirror removal of '%s': %v", name, fbErr)
	}
	return nil
}
