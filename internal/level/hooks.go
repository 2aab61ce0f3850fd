package level

import (
	"fmt"

	"github.com/udisondev/dungeon/internal/model"
)

//go:generate go tool mockgen -destination=./mocks/hooks_mock.go -package=mocks . Hooks

// Hooks receives one call per created entity, dispatched by variant.
// All pickups share OnPickUp; player and player_coop both call OnPlayer.
type Hooks interface {
	OnPlayer(p *model.Player)
	OnWall(w *model.Wall)
	OnBoulder(b *model.Boulder)
	OnPickUp(p *model.PickUp)
	OnGnome(e *model.Enemy)
	OnHound(e *model.Enemy)
	OnCamoGnome(e *model.Enemy)
	OnExit(e *model.Exit)
	OnDoor(d *model.Door)
	OnPortal(p *model.Portal)
	OnSwitch(s *model.Switch)
}

// HookFuncs adapts a set of optional funcs to Hooks. Nil fields are skipped.
type HookFuncs struct {
	Player    func(*model.Player)
	Wall      func(*model.Wall)
	Boulder   func(*model.Boulder)
	PickUp    func(*model.PickUp)
	Gnome     func(*model.Enemy)
	Hound     func(*model.Enemy)
	CamoGnome func(*model.Enemy)
	Exit      func(*model.Exit)
	Door      func(*model.Door)
	Portal    func(*model.Portal)
	Switch    func(*model.Switch)
}

var _ Hooks = HookFuncs{}

func (h HookFuncs) OnPlayer(p *model.Player) {
	if h.Player != nil {
		h.Player(p)
	}
}

func (h HookFuncs) OnWall(w *model.Wall) {
	if h.Wall != nil {
		h.Wall(w)
	}
}

func (h HookFuncs) OnBoulder(b *model.Boulder) {
	if h.Boulder != nil {
		h.Boulder(b)
	}
}

func (h HookFuncs) OnPickUp(p *model.PickUp) {
	if h.PickUp != nil {
		h.PickUp(p)
	}
}

func (h HookFuncs) OnGnome(e *model.Enemy) {
	if h.Gnome != nil {
		h.Gnome(e)
	}
}

func (h HookFuncs) OnHound(e *model.Enemy) {
	if h.Hound != nil {
		h.Hound(e)
	}
}

func (h HookFuncs) OnCamoGnome(e *model.Enemy) {
	if h.CamoGnome != nil {
		h.CamoGnome(e)
	}
}

func (h HookFuncs) OnExit(e *model.Exit) {
	if h.Exit != nil {
		h.Exit(e)
	}
}

func (h HookFuncs) OnDoor(d *model.Door) {
	if h.Door != nil {
		h.Door(d)
	}
}

func (h HookFuncs) OnPortal(p *model.Portal) {
	if h.Portal != nil {
		h.Portal(p)
	}
}

func (h HookFuncs) OnSwitch(s *model.Switch) {
	if h.Switch != nil {
		h.Switch(s)
	}
}

// NopHooks ignores every created entity.
type NopHooks struct{}

var _ Hooks = NopHooks{}

func (NopHooks) OnPlayer(*model.Player)   {}
func (NopHooks) OnWall(*model.Wall)       {}
func (NopHooks) OnBoulder(*model.Boulder) {}
func (NopHooks) OnPickUp(*model.PickUp)   {}
func (NopHooks) OnGnome(*model.Enemy)     {}
func (NopHooks) OnHound(*model.Enemy)     {}
func (NopHooks) OnCamoGnome(*model.Enemy) {}
func (NopHooks) OnExit(*model.Exit)       {}
func (NopHooks) OnDoor(*model.Door)       {}
func (NopHooks) OnPortal(*model.Portal)   {}
func (NopHooks) OnSwitch(*model.Switch)   {}

// Dispatch calls the hook matching e's variant.
// Returns an error if the variant tag and the concrete type disagree.
func Dispatch(h Hooks, e model.Entity) error {
	ok := true
	switch e.Kind() {
	case model.KindPlayer:
		var p *model.Player
		if p, ok = e.(*model.Player); ok {
			h.OnPlayer(p)
		}
	case model.KindWall:
		var w *model.Wall
		if w, ok = e.(*model.Wall); ok {
			h.OnWall(w)
		}
	case model.KindBoulder:
		var b *model.Boulder
		if b, ok = e.(*model.Boulder); ok {
			h.OnBoulder(b)
		}
	case model.KindPickUp:
		var p *model.PickUp
		if p, ok = e.(*model.PickUp); ok {
			h.OnPickUp(p)
		}
	case model.KindGnome:
		var g *model.Enemy
		if g, ok = e.(*model.Enemy); ok {
			h.OnGnome(g)
		}
	case model.KindHound:
		var g *model.Enemy
		if g, ok = e.(*model.Enemy); ok {
			h.OnHound(g)
		}
	case model.KindCamoGnome:
		var g *model.Enemy
		if g, ok = e.(*model.Enemy); ok {
			h.OnCamoGnome(g)
		}
	case model.KindExit:
		var x *model.Exit
		if x, ok = e.(*model.Exit); ok {
			h.OnExit(x)
		}
	case model.KindDoor:
		var d *model.Door
		if d, ok = e.(*model.Door); ok {
			h.OnDoor(d)
		}
	case model.KindPortal:
		var p *model.Portal
		if p, ok = e.(*model.Portal); ok {
			h.OnPortal(p)
		}
	case model.KindSwitch:
		var s *model.Switch
		if s, ok = e.(*model.Switch); ok {
			h.OnSwitch(s)
		}
	default:
		ok = false
	}
	if !ok {
		return fmt.Errorf("dispatching %s entity %d (%T): variant mismatch", e.Kind(), e.ID(), e)
	}
	return nil
}
