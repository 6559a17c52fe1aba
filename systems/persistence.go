package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/voidrift/config"
	"github.com/quasilyte/gdata"
)

// SavedPrefs represents the local preferences stored on disk
type SavedPrefs struct {
	PlayerName string  `json:"playerName"`
	Zoom       float64 `json:"zoom"`
	Fullscreen bool    `json:"fullscreen"`
}

const prefsKey = "prefs"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.App.Name,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadPrefs loads preferences from disk. A missing item is not an error.
func LoadPrefs() (*SavedPrefs, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(prefsKey)
	if err != nil {
		log.Printf("Warning: Could not load prefs: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved prefs: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePrefs saves preferences to disk
func SavePrefs(p *SavedPrefs) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(prefsKey, data); err != nil {
		log.Printf("Warning: Could not save prefs: %v", err)
		return err
	}
	return nil
}

// ApplyPrefs overlays saved preferences onto the global configuration
func ApplyPrefs(p *SavedPrefs) {
	if p == nil {
		return
	}
	if p.PlayerName != "" {
		cfg.App.PlayerName = p.PlayerName
	}
	if p.Zoom > 0 {
		cfg.Camera.Zoom = p.Zoom
	}
}

// CurrentPrefs captures the preferences worth keeping from the running game
func CurrentPrefs(name string, zoom float64, fullscreen bool) *SavedPrefs {
	return &SavedPrefs{PlayerName: name, Zoom: zoom, Fullscreen: fullscreen}
}
