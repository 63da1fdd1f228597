// Package fixtures holds the embedded seed data the stores are constructed
// from. One JSON array per entity, field names matching the wire shape the
// original data set used (userId, createdAt, senderId, ...).
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/localhood/skillswap/internal/domain/model"
)

//go:embed *.json
var fixtureFS embed.FS

// Data bundles the decoded seed lists for all six entity types.
type Data struct {
	Users    []model.User
	Skills   []model.Skill
	Matches  []model.Match
	Sessions []model.Session
	Messages []model.Message
	Ratings  []model.Rating
}

// Load decodes every fixture file. A malformed fixture is a construction-time
// error; the process should not come up with partial seed data.
func Load() (Data, error) {
	var d Data
	if err := decode("users.json", &d.Users); err != nil {
		return Data{}, err
	}
	if err := decode("skills.json", &d.Skills); err != nil {
		return Data{}, err
	}
	if err := decode("matches.json", &d.Matches); err != nil {
		return Data{}, err
	}
	if err := decode("sessions.json", &d.Sessions); err != nil {
		return Data{}, err
	}
	if err := decode("messages.json", &d.Messages); err != nil {
		return Data{}, err
	}
	if err := decode("ratings.json", &d.Ratings); err != nil {
		return Data{}, err
	}
	return d, nil
}

func decode[T any](name string, into *[]T) error {
	raw, err := fixtureFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
