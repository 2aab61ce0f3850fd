package main

import (
	"log/slog"

	"github.com/udisondev/dungeon/internal/level"
	"github.com/udisondev/dungeon/internal/model"
)

// presenter stands in for a rendering layer: it logs every created entity.
type presenter struct {
	logger  *slog.Logger
	created map[model.Kind]int
}

var _ level.Hooks = (*presenter)(nil)

func newPresenter(logger *slog.Logger) *presenter {
	return &presenter{logger: logger, created: make(map[model.Kind]int)}
}

func (p *presenter) show(e model.Entity, attrs ...any) {
	p.created[e.Kind()]++
	args := append([]any{"variant", e.Kind(), "objectID", e.ID(), "position", e.Position()}, attrs...)
	p.logger.Debug("show entity", args...)
}

func (p *presenter) OnPlayer(pl *model.Player)  { p.show(pl, "coop", pl.IsCoop()) }
func (p *presenter) OnWall(w *model.Wall)       { p.show(w) }
func (p *presenter) OnBoulder(b *model.Boulder) { p.show(b) }
func (p *presenter) OnPickUp(pu *model.PickUp)  { p.show(pu, "label", pu.Label()) }
func (p *presenter) OnGnome(e *model.Enemy)     { p.show(e) }
func (p *presenter) OnHound(e *model.Enemy)     { p.show(e, "ranged", e.IsRanged()) }
func (p *presenter) OnCamoGnome(e *model.Enemy) { p.show(e, "camouflaged", e.IsCamouflaged()) }
func (p *presenter) OnExit(e *model.Exit)       { p.show(e) }
func (p *presenter) OnDoor(d *model.Door)       { p.show(d, "door", d.DoorID()) }
func (p *presenter) OnPortal(pt *model.Portal)  { p.show(pt, "portal", pt.PortalID()) }
func (p *presenter) OnSwitch(s *model.Switch)   { p.show(s) }

// reset clears the per-level counters.
func (p *presenter) reset() {
	clear(p.created)
}
