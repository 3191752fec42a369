package domain

import "github.com/google/uuid"

// Player is an identity resident on the local instance. The ID is stable
// across instances; the Name is what players type into commands.
type Player struct {
	ID   uuid.UUID
	Name string
}

// TargetInfo points at the player a reply or last-sent shortcut would reach.
// ID is nil when the target lives on another instance and is known by
// display name only; non-nil means the host can resolve it directly.
type TargetInfo struct {
	ID   *uuid.UUID
	Name string
}

// LocalTarget builds a target for a player resident on this instance.
func LocalTarget(p Player) TargetInfo {
	id := p.ID
	return TargetInfo{ID: &id, Name: p.Name}
}

// RemoteTarget builds a name-only target for a player resident elsewhere.
func RemoteTarget(name string) TargetInfo {
	return TargetInfo{Name: name}
}

// Local reports whether the target can be resolved on this instance.
func (t TargetInfo) Local() bool {
	return t.ID != nil
}
