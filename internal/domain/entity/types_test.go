package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayfield_Contains(t *testing.T) {
	field := Playfield{Width: 375, Height: 667}

	assert.True(t, field.Contains(0, 0, 0))
	assert.True(t, field.Contains(375, 667, 0))
	assert.False(t, field.Contains(-1, 10, 0))
	assert.True(t, field.Contains(-1, 10, 5))
	assert.False(t, field.Contains(10, 700, 20))
}

func TestPlayfield_Clamp(t *testing.T) {
	field := Playfield{Width: 375, Height: 667}

	x, y := field.Clamp(-10, 1000, 20)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 647.0, y)

	x, y = field.Clamp(100, 100, 20)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)
}

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			parsed, ok := ParseKind(k.String())
			assert.True(t, ok)
			assert.Equal(t, k, parsed)
		})
	}

	_, ok := ParseKind("zeppelin")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKind_Capabilities(t *testing.T) {
	tests := []struct {
		kind           Kind
		movement       MovementPolicy
		attack         AttackPattern
		indestructible bool
		scored         bool
	}{
		{KindSmall, MoveDrift, AttackNone, false, true},
		{KindMedium, MoveSway, AttackSingle, false, true},
		{KindLarge, MoveSway, AttackSpread, false, true},
		{KindTurret, MoveStationary, AttackAimed, false, true},
		{KindHazard, MoveDrift, AttackNone, true, false},
		{KindBoss, MoveBounce, AttackBossPhase, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			caps := tt.kind.Capabilities()
			assert.Equal(t, tt.movement, caps.Movement)
			assert.Equal(t, tt.attack, caps.Attack)
			assert.Equal(t, tt.indestructible, caps.Indestructible)
			assert.Equal(t, tt.scored, caps.Scored)
		})
	}

	assert.True(t, KindHazard.Capabilities().Expires)
	assert.True(t, KindBoss.Capabilities().PhaseHook)
	assert.Equal(t, Capabilities{}, Kind(-1).Capabilities())
}

func TestPickupType_StringAndParse(t *testing.T) {
	for _, pt := range []PickupType{PickupHealth, PickupShield, PickupBomb, PickupAttackBoost, PickupFireRateBoost, PickupMultiShot} {
		parsed, ok := ParsePickupType(pt.String())
		assert.True(t, ok, pt.String())
		assert.Equal(t, pt, parsed)
	}

	b, ok := PickupFireRateBoost.Boost()
	assert.True(t, ok)
	assert.Equal(t, BoostFireRate, b)

	_, ok = PickupHealth.Boost()
	assert.False(t, ok)
}

func TestEvents_Drain(t *testing.T) {
	var events Events
	events.Add(WaveStarted{Wave: 1})
	events.Add(WaveCompleted{Wave: 1})

	drained := events.Drain()

	assert.Equal(t, []Event{WaveStarted{Wave: 1}, WaveCompleted{Wave: 1}}, drained)
	assert.Empty(t, events)

	var nilOutbox *Events
	nilOutbox.Add(BossDefeated{})
	assert.Nil(t, nilOutbox.Drain())
}
