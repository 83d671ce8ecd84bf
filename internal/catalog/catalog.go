package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aaronzipp/player-compare/internal/models"
)

//go:embed data/players.json
var defaultPlayers []byte

var (
	// ErrDuplicateID is returned when two records share an id
	ErrDuplicateID = errors.New("duplicate player id")
	// ErrInvalidPlayer is returned for records outside the catalog schema
	ErrInvalidPlayer = errors.New("invalid player record")
)

// Catalog is the fixed, ordered player roster. It is never mutated after load.
type Catalog struct {
	players []models.Player
	byID    map[string]int
}

// Default loads the roster shipped with the binary
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultPlayers))
}

// LoadFile loads a roster from a JSON file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a JSON array of players
func Load(r io.Reader) (*Catalog, error) {
	var players []models.Player
	if err := json.NewDecoder(r).Decode(&players); err != nil {
		return nil, fmt.Errorf("parsing players: %w", err)
	}
	return New(players)
}

// New builds a catalog from records, rejecting duplicates and out-of-range values
func New(players []models.Player) (*Catalog, error) {
	c := &Catalog{
		players: make([]models.Player, 0, len(players)),
		byID:    make(map[string]int, len(players)),
	}
	for i, p := range players {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		c.byID[p.ID] = len(c.players)
		c.players = append(c.players, p)
	}
	return c, nil
}

func validate(p models.Player) error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidPlayer)
	}
	for _, k := range models.StatKeys {
		if v := p.Stats.Value(k); v < 0 || v > 100 {
			return fmt.Errorf("%w: %s %s=%d outside 0-100", ErrInvalidPlayer, p.ID, k, v)
		}
	}
	a := p.Achievements
	if a.BallonDor < 0 || a.UCL < 0 || a.WorldCup < 0 {
		return fmt.Errorf("%w: %s has a negative achievement count", ErrInvalidPlayer, p.ID)
	}
	return nil
}

// FindByID returns the player with exactly this id. Unknown ids, including "", return false.
func (c *Catalog) FindByID(id string) (models.Player, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Player{}, false
	}
	return c.players[i], true
}

// All returns the players in catalog order
func (c *Catalog) All() []models.Player {
	out := make([]models.Player, len(c.players))
	copy(out, c.players)
	return out
}

// Len returns the number of players
func (c *Catalog) Len() int {
	return len(c.players)
}
