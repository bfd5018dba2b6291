package game

// Event is one entry of the structured run history. The event set is
// closed; consumers switch exhaustively over the concrete types.
type Event interface {
	isEvent()
}

// RoomStart marks the beginning of a numbered room. Everything between
// two RoomStart markers happened in the earlier room.
type RoomStart struct {
	Number int
}

// Potion records a heal that took effect.
type Potion struct {
	Value    int
	HPBefore int
	HPAfter  int
}

// PotionDiscarded records a potion wasted by the one-per-turn rule.
type PotionDiscarded struct {
	Value int
}

// WeaponEquip records a weapon binding.
type WeaponEquip struct {
	Value int
}

// Fight records a monster resolution, armed or bare-handed.
type Fight struct {
	Monster     int
	WithWeapon  bool
	WeaponValue int // 0 when bare-handed
	DamageTaken int
}

// Avoid records a room avoided wholesale.
type Avoid struct{}

func (RoomStart) isEvent()       {}
func (Potion) isEvent()          {}
func (PotionDiscarded) isEvent() {}
func (WeaponEquip) isEvent()     {}
func (Fight) isEvent()           {}
func (Avoid) isEvent()           {}

// RoomEvents is the per-room view over the flat history.
type RoomEvents struct {
	Number int
	Events []Event
}

// GroupByRoom rebuilds the per-room event groups from the RoomStart
// markers. The flat history stays the single source of truth; this is a
// pure projection for display.
func GroupByRoom(history []Event) []RoomEvents {
	var rooms []RoomEvents
	for _, ev := range history {
		if rs, ok := ev.(RoomStart); ok {
			rooms = append(rooms, RoomEvents{Number: rs.Number})
			continue
		}
		if len(rooms) == 0 {
			rooms = append(rooms, RoomEvents{})
		}
		last := len(rooms) - 1
		rooms[last].Events = append(rooms[last].Events, ev)
	}
	return rooms
}
