package domain

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryDirectory is a host-side directory of resident players. Hosts with
// their own player registry implement contract.Directory directly; this one
// backs the standalone binary and the tests.
type InMemoryDirectory struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]Player
	byName  map[string]Player
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		byID:   make(map[uuid.UUID]Player),
		byName: make(map[string]Player),
	}
}

func (d *InMemoryDirectory) Add(p Player) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byID[p.ID] = p
	d.byName[strings.ToLower(p.Name)] = p
}

func (d *InMemoryDirectory) Remove(p Player) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.byID, p.ID)
	delete(d.byName, strings.ToLower(p.Name))
}

// PlayerByName resolves an exact display name, case-insensitively.
func (d *InMemoryDirectory) PlayerByName(name string) (Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byName[strings.ToLower(name)]
	return p, ok
}

func (d *InMemoryDirectory) PlayerByID(id uuid.UUID) (Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byID[id]
	return p, ok
}

func (d *InMemoryDirectory) OnlinePlayers() []Player {
	d.mu.RLock()
	defer d.mu.RUnlock()
	players := make([]Player, 0, len(d.byID))
	for _, p := range d.byID {
		players = append(players, p)
	}
	return players
}
