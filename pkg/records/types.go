package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// User is a registered account as persisted, including its password.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// PublicUser is the projection of a User that leaves the store.
type PublicUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Public returns the user without its password.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserUpdate is a partial user payload. Nil fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// apply merges the set fields of upd onto u.
func (upd UserUpdate) apply(u User) User {
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	return u
}

// Item is an inventory record: a store-assigned id plus arbitrary fields.
// It is serialized flat, with the fields next to "id".
type Item struct {
	ID     int
	Fields map[string]any
}

// clone returns a copy whose top-level field map is not shared.
func (it Item) clone() Item {
	return Item{ID: it.ID, Fields: maps.Clone(it.Fields)}
}

// MarshalJSON flattens the item into a single JSON object.
func (it Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Fields)+1)
	for k, v := range it.Fields {
		out[k] = v
	}
	out["id"] = it.ID
	return json.Marshal(out)
}

// UnmarshalJSON extracts "id" and keeps every other field verbatim.
// Numbers are kept as json.Number so they round-trip without loss.
func (it *Item) UnmarshalJSON(data []byte) error {
	fields, err := DecodeFields(data)
	if err != nil {
		return err
	}
	it.ID = 0
	if raw, ok := fields["id"]; ok {
		n, ok := raw.(json.Number)
		if !ok {
			return fmt.Errorf("item id must be a number, got %T", raw)
		}
		id, err := n.Int64()
		if err != nil {
			return fmt.Errorf("item id: %w", err)
		}
		it.ID = int(id)
		delete(fields, "id")
	}
	it.Fields = fields
	return nil
}

// DecodeFields parses a JSON object into a field map, keeping numbers as
// json.Number. A JSON null yields an empty map.
func DecodeFields(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]any)
	}
	return fields, nil
}
