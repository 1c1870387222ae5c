package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/petri/components"
)

func TestPlayerStart(t *testing.T) {
	w, _ := newTestWorld(t)
	ps := w.PlayerStats()

	if ps.X != 0 || ps.Y != 128 || ps.Heading != 0 {
		t.Errorf("player at (%v, %v) facing %v, want (0, 128) facing 0", ps.X, ps.Y, ps.Heading)
	}
	if ps.Health != 100 || ps.Sprays != 20 || ps.Flames != 5 || !ps.Alive {
		t.Errorf("unexpected start stats %+v", ps)
	}
	if !w.playerMap.Get(w.player).CanRecharge {
		t.Error("recharge should start eligible")
	}
}

func TestPlayerRotateStaysOnBoundary(t *testing.T) {
	tests := []struct {
		name        string
		key         Key
		wantHeading float64
	}{
		{"left", KeyRotateLeft, 5},
		{"right", KeyRotateRight, 355},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, host := newTestWorld(t)
			host.keys = []Key{tt.key}

			w.act(w.player)

			ps := w.PlayerStats()
			if math.Abs(ps.Heading-tt.wantHeading) > 1e-9 {
				t.Errorf("heading = %v, want %v", ps.Heading, tt.wantHeading)
			}
			d := math.Hypot(ps.X-128, ps.Y-128)
			if math.Abs(d-128) > 1e-9 {
				t.Errorf("player left the boundary: distance %v from center", d)
			}
			if w.playerMap.Get(w.player).CanRecharge {
				t.Error("rotation should clear recharge eligibility")
			}
		})
	}
}

func TestSprayChargesBounded(t *testing.T) {
	t.Run("fire at zero is a no-op", func(t *testing.T) {
		w, host := newTestWorld(t)
		w.playerMap.Get(w.player).Sprays = 0
		host.keys = []Key{KeyPrimary}

		w.act(w.player)

		if got := w.PlayerStats().Sprays; got != 0 {
			t.Errorf("sprays = %d, want 0", got)
		}
		if len(w.order) != 0 {
			t.Errorf("created %d entities, want none", len(w.order))
		}
		if host.count(SoundSprayFired) != 0 {
			t.Error("spray sound played without a charge")
		}
	})

	t.Run("fire consumes one charge", func(t *testing.T) {
		w, host := newTestWorld(t)
		host.keys = []Key{KeyPrimary}

		w.act(w.player)

		if got := w.PlayerStats().Sprays; got != 19 {
			t.Errorf("sprays = %d, want 19", got)
		}
		sprays := w.entitiesOf(components.KindSpray)
		if len(sprays) != 1 {
			t.Fatalf("got %d sprays, want 1", len(sprays))
		}
		if p := w.pos(sprays[0]); math.Abs(p.X-8) > 1e-9 || math.Abs(p.Y-128) > 1e-9 {
			t.Errorf("spray at (%v, %v), want one sprite ahead at (8, 128)", p.X, p.Y)
		}
		if host.count(SoundSprayFired) != 1 {
			t.Error("expected spray sound")
		}
	})

	t.Run("idle recharge caps at max", func(t *testing.T) {
		w, _ := newTestWorld(t)
		w.playerMap.Get(w.player).Sprays = 18

		for i := 0; i < 5; i++ {
			w.act(w.player)
		}

		if got := w.PlayerStats().Sprays; got != 20 {
			t.Errorf("sprays = %d, want 20", got)
		}
	})

	t.Run("rotation delays recharge by one idle tick", func(t *testing.T) {
		w, host := newTestWorld(t)
		w.playerMap.Get(w.player).Sprays = 10
		host.keys = []Key{KeyRotateLeft}

		w.act(w.player) // rotate
		w.act(w.player) // idle, not eligible
		if got := w.PlayerStats().Sprays; got != 10 {
			t.Fatalf("sprays = %d after first idle tick, want 10", got)
		}
		w.act(w.player) // idle, eligible again
		if got := w.PlayerStats().Sprays; got != 11 {
			t.Errorf("sprays = %d after second idle tick, want 11", got)
		}
	})
}

func TestFlamethrowerRing(t *testing.T) {
	for _, facing := range []float64{0, 37, 270} {
		w, host := newTestWorld(t)
		w.rotMap.Get(w.player).Heading = facing
		host.keys = []Key{KeySecondary}

		w.act(w.player)

		flames := w.entitiesOf(components.KindFlame)
		if len(flames) != 16 {
			t.Fatalf("facing %v: got %d flames, want 16", facing, len(flames))
		}
		for i, e := range flames {
			want := float64(i) * 22.5
			if got := w.rotMap.Get(e).Heading; math.Abs(got-want) > 1e-9 {
				t.Errorf("facing %v: flame %d heading %v, want %v", facing, i, got, want)
			}
			p := w.pos(e)
			if d := math.Hypot(p.X-0, p.Y-128); math.Abs(d-8) > 1e-9 {
				t.Errorf("flame %d starts %v from the player, want 8", i, d)
			}
		}

		pl := w.playerMap.Get(w.player)
		if pl.Flames != 4 || pl.CanRecharge {
			t.Errorf("flames = %d, recharge = %v; want 4, false", pl.Flames, pl.CanRecharge)
		}
		if host.count(SoundFlameFired) != 1 {
			t.Error("expected one flame sound")
		}
	}
}

func TestPlayerDamageScenario(t *testing.T) {
	w, host := newTestWorld(t)

	for i := 0; i < 3; i++ {
		w.damage(w.player, 5)
	}
	ps := w.PlayerStats()
	if ps.Health != 85 || !ps.Alive {
		t.Fatalf("after three hits: health %d alive %v, want 85 true", ps.Health, ps.Alive)
	}
	if host.count(SoundPlayerHurt) != 3 {
		t.Errorf("hurt sounds = %d, want 3", host.count(SoundPlayerHurt))
	}

	w.damage(w.player, 85)
	if w.PlayerStats().Alive {
		t.Error("player should be dead")
	}
	if host.count(SoundPlayerDied) != 1 {
		t.Errorf("died sounds = %d, want 1", host.count(SoundPlayerDied))
	}
}

func TestNegativeDamageIgnored(t *testing.T) {
	w, host := newTestWorld(t)

	w.damage(w.player, -10)
	w.damagePlayer(-10, components.KindHazard)

	if got := w.PlayerStats().Health; got != 100 {
		t.Errorf("health = %d, want 100", got)
	}
	if len(host.sounds) != 0 {
		t.Errorf("unexpected sounds %v", host.sounds)
	}
}
