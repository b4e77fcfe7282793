// Package storage persists the high score and player settings across runs.
// It uses gdata for a cross-platform data directory and yaml for the record
// payloads. A Store with no backing manager degrades to memory-only: loads
// return defaults and saves succeed without writing anything.
package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "best"

	settingsObject   = "settings"
	settingsProperty = "global"
)

type scoreRecord struct {
	HighScore int `yaml:"high_score"`
}

// Settings are the player-tunable options persisted between runs.
type Settings struct {
	Volume       float64 `yaml:"volume"`
	SoundEnabled bool    `yaml:"sound_enabled"`
}

// DefaultSettings returns the out-of-the-box settings.
func DefaultSettings() Settings {
	return Settings{Volume: 0.8, SoundEnabled: true}
}

// Store reads and writes persistent records.
type Store struct {
	m *gdata.Manager
}

// Open binds a store to the platform data directory for appName. When the
// directory cannot be opened the returned store is still usable in
// memory-only mode, and the error is advisory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("open data dir: %w", err)
	}
	return &Store{m: m}, nil
}

// LoadHighScore returns the best score on record, or zero when none exists.
func (s *Store) LoadHighScore() (int, error) {
	if s.m == nil || !s.m.ObjectPropExists(scoresObject, scoresProperty) {
		return 0, nil
	}

	data, err := s.m.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}

	var rec scoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode high score: %w", err)
	}
	return rec.HighScore, nil
}

// SaveHighScore writes the best score. Scores below the stored best are
// written as-is; the caller owns the "only improve" policy.
func (s *Store) SaveHighScore(score int) error {
	if s.m == nil {
		return nil
	}

	data, err := yaml.Marshal(scoreRecord{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := s.m.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// LoadSettings returns the persisted settings, or defaults when no record
// exists or the record cannot be read.
func (s *Store) LoadSettings() (Settings, error) {
	if s.m == nil || !s.m.ObjectPropExists(settingsObject, settingsProperty) {
		return DefaultSettings(), nil
	}

	data, err := s.m.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}

	var st Settings
	if err := yaml.Unmarshal(data, &st); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	return st, nil
}

// SaveSettings writes the settings record.
func (s *Store) SaveSettings(st Settings) error {
	if s.m == nil {
		return nil
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.m.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// HighScores adapts Store to the game's score persistence interface.
type HighScores struct {
	Store *Store
}

func (h HighScores) Load() (int, error)   { return h.Store.LoadHighScore() }
func (h HighScores) Save(score int) error { return h.Store.SaveHighScore(score) }
