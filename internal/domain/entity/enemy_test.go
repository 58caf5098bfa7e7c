package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallStats() EnemyStats {
	return EnemyStats{MaxHealth: 20, ContactDamage: 10, Score: 10, Speed: 100, Width: 30, Height: 30}
}

func bossPhases() []BossPhase {
	return []BossPhase{
		{Threshold: 1.0, FireInterval: 1.0, Speed: 80},
		{Threshold: 0.6, FireInterval: 0.7, Speed: 100, Text: "Phase 2: Enraged!"},
		{Threshold: 0.3, FireInterval: 0.5, Speed: 120, Text: "Phase 3: Berserk!"},
	}
}

func newTestBoss(hp int) *Enemy {
	e := NewEnemy(9, KindBoss, 187, 100, EnemyStats{MaxHealth: hp, ContactDamage: 30, Score: 500, Width: 120, Height: 80})
	e.Boss = NewBossState("Sky Fortress", bossPhases())
	return e
}

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, KindSmall, 100, 200, smallStats())

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(1), enemy.ID)
	assert.Equal(t, KindSmall, enemy.Kind)
	assert.Equal(t, 100.0, enemy.X)
	assert.Equal(t, 200.0, enemy.Y)
	assert.True(t, enemy.Active)
	assert.Equal(t, 20, enemy.Health)
	assert.Equal(t, 20, enemy.MaxHealth)
	assert.Equal(t, 10, enemy.ContactDamage)
	assert.Equal(t, 10, enemy.Score)
	assert.Nil(t, enemy.Boss)
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy(1, KindSmall, 50, 60, smallStats())
	var events Events

	killed := enemy.TakeDamage(5, &events)
	assert.False(t, killed)
	assert.Equal(t, 15, enemy.Health)
	assert.Greater(t, enemy.HitTimer, 0.0)
	assert.Empty(t, events)

	killed = enemy.TakeDamage(30, &events)
	assert.True(t, killed)
	assert.Equal(t, 0, enemy.Health)
	assert.False(t, enemy.Active)

	require.Len(t, events, 1)
	assert.Equal(t, EnemyDestroyed{ID: 1, Kind: KindSmall, Score: 10, X: 50, Y: 60}, events[0])
}

func TestEnemy_TakeDamageHealthProperty(t *testing.T) {
	tests := []struct {
		name    string
		amounts []int
		want    int
	}{
		{"no damage", nil, 20},
		{"single hit", []int{7}, 13},
		{"several hits", []int{3, 4, 5}, 8},
		{"exact kill", []int{10, 10}, 0},
		{"overkill floors at zero", []int{15, 15, 15}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy(1, KindSmall, 0, 0, smallStats())
			for _, a := range tt.amounts {
				enemy.TakeDamage(a, nil)
			}
			assert.Equal(t, tt.want, enemy.Health)
		})
	}
}

func TestEnemy_DestroyIsIdempotent(t *testing.T) {
	enemy := NewEnemy(1, KindMedium, 0, 0, EnemyStats{MaxHealth: 30, Score: 20})
	var events Events

	assert.True(t, enemy.TakeDamage(30, &events))
	assert.False(t, enemy.TakeDamage(30, &events))
	assert.False(t, enemy.TakeDamage(1, &events))

	destroyed := 0
	for _, ev := range events {
		if _, ok := ev.(EnemyDestroyed); ok {
			destroyed++
		}
	}
	assert.Equal(t, 1, destroyed)
}

func TestEnemy_HazardRejectsDamage(t *testing.T) {
	hazard := NewEnemy(3, KindHazard, 100, 100, EnemyStats{MaxHealth: 1, ContactDamage: 20, Lifetime: 15})
	var events Events

	for _, amount := range []int{1, 50, 9999} {
		assert.False(t, hazard.TakeDamage(amount, &events))
	}
	assert.Equal(t, 1, hazard.Health)
	assert.True(t, hazard.Active)
	assert.Empty(t, events)
}

func TestEnemy_RemoveEmitsNothing(t *testing.T) {
	enemy := NewEnemy(1, KindSmall, 0, 0, smallStats())
	var events Events

	enemy.Remove()

	assert.False(t, enemy.Active)
	assert.False(t, enemy.TakeDamage(100, &events))
	assert.Empty(t, events)
}

func TestEnemy_IsAlive(t *testing.T) {
	enemy := NewEnemy(1, KindSmall, 0, 0, smallStats())
	assert.True(t, enemy.IsAlive())

	enemy.Health = 0
	assert.False(t, enemy.IsAlive())

	enemy.Health = 10
	enemy.Active = false
	assert.False(t, enemy.IsAlive())
}

func TestEnemy_GetHitbox(t *testing.T) {
	enemy := NewEnemy(1, KindSmall, 100, 200, smallStats())

	x, y, w, h := enemy.GetHitbox()
	assert.Equal(t, 85.0, x)
	assert.Equal(t, 185.0, y)
	assert.Equal(t, 30.0, w)
	assert.Equal(t, 30.0, h)
}

func TestEnemy_BossPhaseOnDamage(t *testing.T) {
	boss := newTestBoss(1000)
	var events Events

	boss.TakeDamage(350, &events)
	assert.Equal(t, 0, boss.Boss.Phase)
	assert.Empty(t, events)

	boss.TakeDamage(60, &events)
	assert.Equal(t, 1, boss.Boss.Phase)
	require.Len(t, events, 1)
	assert.Equal(t, BossPhaseChanged{Phase: 1, Text: "Phase 2: Enraged!"}, events[0])
	assert.Equal(t, 0.7, boss.Boss.Current().FireInterval)
	assert.Equal(t, 100.0, boss.Boss.Current().Speed)
}

func TestEnemy_BossSingleHitSkipsPhase(t *testing.T) {
	boss := newTestBoss(1000)
	var events Events

	boss.TakeDamage(800, &events)

	assert.Equal(t, 2, boss.Boss.Phase)
	require.Len(t, events, 1)
	assert.Equal(t, BossPhaseChanged{Phase: 2, Text: "Phase 3: Berserk!"}, events[0])
}

func TestEnemy_BossDefeated(t *testing.T) {
	boss := newTestBoss(1000)
	var events Events

	assert.False(t, boss.TakeDamage(999, &events))
	events.Drain()

	assert.True(t, boss.TakeDamage(1, &events))
	require.Len(t, events, 2)
	assert.Equal(t, EnemyDestroyed{ID: 9, Kind: KindBoss, Score: 500, X: 187, Y: 100}, events[0])
	assert.Equal(t, BossDefeated{Name: "Sky Fortress"}, events[1])

	assert.False(t, boss.TakeDamage(1, &events))
	assert.Len(t, events, 2)
}

func TestEnemy_PruneShots(t *testing.T) {
	enemy := NewEnemy(1, KindMedium, 0, 0, EnemyStats{MaxHealth: 30})
	a := NewProjectile(SideEnemy, 0, 0, 0, 300, 15, 6, 6)
	b := NewProjectile(SideEnemy, 0, 0, 0, 300, 15, 6, 6)
	enemy.AddShot(a)
	enemy.AddShot(b)
	assert.Equal(t, EntityID(1), a.Owner)

	a.Deactivate()
	enemy.PruneShots()

	require.Len(t, enemy.Shots, 1)
	assert.Same(t, b, enemy.Shots[0])
}
