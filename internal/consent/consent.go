package consent

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

const (
	CookieName = "cookie_consent"
	MaxAge     = 365 * 24 * time.Hour
)

// Preferences are the cookie categories a visitor has opted into.
// Essential cookies cannot be switched off.
type Preferences struct {
	Essential  bool `json:"essential"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
	Functional bool `json:"functional"`
}

func Default() Preferences {
	return Preferences{Essential: true, Analytics: true, Marketing: false, Functional: true}
}

// Update is a partial change; nil fields keep their current value.
type Update struct {
	Essential  *bool `json:"essential"`
	Analytics  *bool `json:"analytics"`
	Marketing  *bool `json:"marketing"`
	Functional *bool `json:"functional"`
}

func (p Preferences) Apply(u Update) Preferences {
	if u.Analytics != nil {
		p.Analytics = *u.Analytics
	}
	if u.Marketing != nil {
		p.Marketing = *u.Marketing
	}
	if u.Functional != nil {
		p.Functional = *u.Functional
	}
	p.Essential = true
	return p
}

func Encode(p Preferences) string {
	b, _ := json.Marshal(p)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode reads a cookie value, falling back to the defaults for anything
// missing or malformed.
func Decode(value string) Preferences {
	if value == "" {
		return Default()
	}
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Default()
	}
	var u Update
	if err := json.Unmarshal(b, &u); err != nil {
		return Default()
	}
	return Default().Apply(u)
}
