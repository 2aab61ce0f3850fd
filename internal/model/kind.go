package model

// Kind is the closed set of concrete entity variants.
// Presentation hooks and world queries switch on it instead of on raw type names.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindWall
	KindBoulder
	KindPickUp
	KindGnome
	KindHound
	KindCamoGnome
	KindExit
	KindDoor
	KindPortal
	KindSwitch
)

var kindNames = [...]string{
	KindPlayer:    "player",
	KindWall:      "wall",
	KindBoulder:   "boulder",
	KindPickUp:    "pickup",
	KindGnome:     "gnome",
	KindHound:     "hound",
	KindCamoGnome: "camo_gnome",
	KindExit:      "exit",
	KindDoor:      "door",
	KindPortal:    "portal",
	KindSwitch:    "switch",
}

// Kinds returns every variant in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsHostile reports whether the variant is an enemy actor.
func (k Kind) IsHostile() bool {
	return k == KindGnome || k == KindHound || k == KindCamoGnome
}

// IsObstacle reports whether the variant blocks movement by itself.
// Closed doors block too, see Door.Blocks.
func (k Kind) IsObstacle() bool {
	return k == KindWall || k == KindBoulder
}
