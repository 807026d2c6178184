package model

// Settings holds user preferences. Currency is a display label only; no
// exchange-rate conversion happens anywhere.
type Settings struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
}

// DefaultSettings returns the settings applied before any are saved.
func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		Currency:      "USD",
		Notifications: true,
	}
}
