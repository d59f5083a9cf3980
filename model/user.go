// file: model/user.go

package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// User is a registered dashboard user. Password holds the bcrypt hash and is
// never serialised.
type User struct {
	ID          int         `json:"id"`
	Username    string      `json:"username"`
	Password    string      `json:"-"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

const preferredCurrenciesKey = "preferred_currencies"

// Preferences is the per-user preference document. PreferredCurrencies is the
// only field the server interprets; any other keys sent by clients are kept
// in Extra and round-tripped unchanged.
type Preferences struct {
	PreferredCurrencies []string                   `json:"preferred_currencies" validate:"required,dive,required"`
	Extra               map[string]json.RawMessage `json:"-"`
}

// DefaultPreferences is assigned to users created without explicit preferences.
func DefaultPreferences() Preferences {
	return Preferences{PreferredCurrencies: []string{"EUR/USD", "USD/JPY"}}
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(p.Extra)+1)
	for k, v := range p.Extra {
		doc[k] = v
	}
	currencies := p.PreferredCurrencies
	if currencies == nil {
		currencies = []string{}
	}
	doc[preferredCurrenciesKey] = currencies
	return json.Marshal(doc)
}

// UnmarshalJSON leaves PreferredCurrencies nil when the key is absent or null,
// which is how a missing required field is detected.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return errors.New("preferences must be a JSON object")
	}

	p.PreferredCurrencies = nil
	if raw, ok := doc[preferredCurrenciesKey]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if err := json.Unmarshal(raw, &p.PreferredCurrencies); err != nil {
			return fmt.Errorf("%s: %w", preferredCurrenciesKey, err)
		}
	}
	delete(doc, preferredCurrenciesKey)

	p.Extra = nil
	if len(doc) > 0 {
		p.Extra = doc
	}
	return nil
}

// Value stores the document in a JSONB column.
func (p Preferences) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads the document from a JSONB column.
func (p *Preferences) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Preferences{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into Preferences", src)
	}
}
