package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
)

// actPlayer consumes at most one pending key. Rotating or throwing flames
// clears spray recharge eligibility; an idle tick recharges one spray if
// eligible and then restores eligibility.
func (w *World) actPlayer(e ecs.Entity) {
	pl := w.playerMap.Get(e)

	key, ok := w.host.PendingKey()
	if !ok {
		if pl.CanRecharge && pl.Sprays < w.cfg.Player.MaxSprays {
			pl.Sprays++
		}
		pl.CanRecharge = true
		return
	}

	switch key {
	case KeyRotateLeft:
		w.rotatePlayer(e, w.cfg.Player.RotateStep)
		pl.CanRecharge = false
	case KeyRotateRight:
		w.rotatePlayer(e, -w.cfg.Player.RotateStep)
		pl.CanRecharge = false
	case KeyPrimary:
		pl.CanRecharge = true
		if pl.Sprays >= 1 {
			pl.Sprays--
			w.dischargeSpray()
			w.host.PlaySound(SoundSprayFired)
		}
	case KeySecondary:
		pl.CanRecharge = false
		if pl.Flames >= 1 {
			pl.Flames--
			w.dischargeFlamethrower()
			w.host.PlaySound(SoundFlameFired)
		}
	}
}

// rotatePlayer moves the player around the boundary circle by delta degrees.
func (w *World) rotatePlayer(e ecs.Entity, delta float64) {
	pos := w.posMap.Get(e)
	rot := w.rotMap.Get(e)
	pos.X, pos.Y, rot.Heading = w.arena.Orbit(pos.X, pos.Y, rot.Heading, delta)
}

// dischargeSpray emits one spray a sprite width ahead of the player.
func (w *World) dischargeSpray() {
	pos := *w.posMap.Get(w.player)
	heading := w.rotMap.Get(w.player).Heading
	x, y := systems.MoveAngle(pos.X, pos.Y, heading, w.arena.SpriteWidth)
	w.spawnProjectile(components.KindSpray, x, y, heading)
	w.record(telemetry.NewShotEvent(w.tick, components.KindSpray))
}

// dischargeFlamethrower emits a ring of evenly spaced flames around the
// player, independent of its facing.
func (w *World) dischargeFlamethrower() {
	pos := *w.posMap.Get(w.player)
	n := w.cfg.Projectiles.FlameCount
	for i := 0; i < n; i++ {
		heading := float64(i) * 360 / float64(n)
		x, y := systems.MoveAngle(pos.X, pos.Y, heading, w.arena.SpriteWidth)
		w.spawnProjectile(components.KindFlame, x, y, heading)
	}
	w.record(telemetry.NewShotEvent(w.tick, components.KindFlame))
}

// healPlayer restores full health.
func (w *World) healPlayer() {
	w.healthMap.Get(w.player).HP = w.cfg.Player.MaxHealth
}

// rechargeFlames adds flame charges.
func (w *World) rechargeFlames(n int) {
	if n < 0 {
		return
	}
	w.playerMap.Get(w.player).Flames += n
}
