package castle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/castle-arcade/internal/config"
)

const (
	spikeTrap = iota
	lightTrap
	slimeTrap
	bellTrap
)

func newTestTrap(kind int, x, y float64, floor int) *Trap {
	return NewTrap(kind, config.DefaultCastleConfig().Traps[kind], x, y, floor)
}

func TestSpikeTrapDamagesAndSpendsUse(t *testing.T) {
	trap := newTestTrap(spikeTrap, 200, 430, 1)
	troll := newTestTroll(200, 1, 40, 100)

	require.Equal(t, 5, trap.Uses)
	require.True(t, trap.Activate(troll))

	assert.Equal(t, 75, troll.Health)
	assert.Equal(t, 4, trap.Uses)
	assert.Equal(t, 1500.0, trap.Cooldown)
	assert.True(t, trap.Triggered)
}

func TestCooldownBlocksReactivation(t *testing.T) {
	trap := newTestTrap(spikeTrap, 200, 430, 1)
	troll := newTestTroll(200, 1, 40, 100)

	require.True(t, trap.Activate(troll))
	health := troll.Health

	assert.False(t, trap.Activate(troll))
	assert.Equal(t, health, troll.Health)
	assert.Equal(t, TrollWalking, troll.State)
	assert.False(t, trap.CanActivate())

	trap.Cooldown = 0
	assert.True(t, trap.CanActivate())
}

func TestTrapUpdateTicksTimers(t *testing.T) {
	trap := newTestTrap(spikeTrap, 200, 430, 1)
	require.True(t, trap.Activate(newTestTroll(200, 1, 40, 100)))

	trap.Update(400)
	assert.False(t, trap.Triggered)
	assert.False(t, trap.CanActivate())

	trap.Update(1100)
	assert.True(t, trap.CanActivate())
	assert.Equal(t, 4, trap.Uses, "update never touches uses")
}

func TestSpikeTrapExhaustsAfterFiveUses(t *testing.T) {
	trap := newTestTrap(spikeTrap, 200, 430, 1)
	troll := newTestTroll(200, 1, 40, 1000)

	for i := 0; i < 5; i++ {
		trap.Cooldown = 0
		require.True(t, trap.Activate(troll), "activation %d", i+1)
	}

	assert.Zero(t, trap.Uses)
	assert.False(t, trap.Active)

	trap.Cooldown = 0
	trap.Update(10000)
	assert.False(t, trap.Activate(troll))
	assert.False(t, trap.Active, "exhausted traps stay off")
	assert.Equal(t, 1000-5*25, troll.Health)
}

func TestLightMachineIsUnlimited(t *testing.T) {
	trap := newTestTrap(lightTrap, 200, 405, 1)
	troll := newTestTroll(200, 1, 40, 1000)

	assert.True(t, trap.Unlimited())
	for i := 0; i < 20; i++ {
		trap.Cooldown = 0
		require.True(t, trap.Activate(troll))
	}

	assert.True(t, trap.Active)
	assert.Equal(t, 1000-20*10, troll.Health)
	assert.Equal(t, TrollStunned, troll.State)
	assert.Equal(t, 2000.0, troll.StunTimer)
}

func TestSlimeOnlySlows(t *testing.T) {
	trap := newTestTrap(slimeTrap, 200, 435, 1)
	troll := newTestTroll(200, 1, 100, 100)

	require.True(t, trap.Activate(troll))

	assert.Equal(t, 100, troll.Health)
	assert.InDelta(t, troll.BaseSpeed*0.3, troll.Speed, 1e-9)
	assert.Equal(t, 9, trap.Uses)
}

func TestBellStunsEveryoneInRadius(t *testing.T) {
	// Bell centre is (425, 427.5); troll centres sit at y 447.5 on floor 1.
	bell := newTestTrap(bellTrap, 400, 400, 1)
	near := newTestTroll(420, 1, 40, 100) // ~28 away
	edge := newTestTroll(540, 1, 40, 100) // ~141 away
	far := newTestTroll(600, 1, 40, 100)  // ~201 away
	upstairs := newTestTroll(420, 2, 40, 100)
	dead := newTestTroll(430, 1, 40, 10)
	dead.TakeDamage(10)

	assert.True(t, bell.InTriggerRange(near))
	assert.False(t, bell.InTriggerRange(edge))

	hit := bell.ActivateArea([]*Troll{near, edge, far, upstairs, dead})

	assert.ElementsMatch(t, []*Troll{near, edge}, hit)
	assert.Equal(t, 95, near.Health)
	assert.Equal(t, TrollStunned, edge.State)
	assert.Equal(t, 100, far.Health)
	assert.Equal(t, 100, upstairs.Health)
	assert.Equal(t, 2, bell.Uses)

	assert.Nil(t, bell.ActivateArea([]*Troll{near}), "bell is cooling down")
}

func TestBellShutsDownAfterDelay(t *testing.T) {
	bell := newTestTrap(bellTrap, 400, 400, 1)

	for i := 0; i < 3; i++ {
		bell.Cooldown = 0
		bell.ActivateArea(nil)
	}

	assert.Zero(t, bell.Uses)
	assert.True(t, bell.Active, "stays visible while it rings out")
	assert.False(t, bell.CanActivate())

	bell.Update(999)
	assert.True(t, bell.Active)
	bell.Update(1)
	assert.False(t, bell.Active)
}

func TestBoxTrapTriggerRange(t *testing.T) {
	spike := newTestTrap(spikeTrap, 200, 430, 1)

	assert.True(t, spike.InTriggerRange(newTestTroll(230, 1, 40, 10)))
	assert.False(t, spike.InTriggerRange(newTestTroll(270, 1, 40, 10)), "touching edges do not count")
	assert.False(t, spike.InTriggerRange(newTestTroll(100, 1, 40, 10)))
}

func TestGemDamage(t *testing.T) {
	gem := NewGem(425, 130, config.DefaultCastleConfig().Gem)
	require.Equal(t, 100, gem.Health)

	gem.TakeDamage(15)
	assert.Equal(t, 85, gem.Health)
	assert.False(t, gem.Destroyed())

	gem.TakeDamage(85)
	assert.Zero(t, gem.Health)
	assert.True(t, gem.Destroyed())
	assert.Zero(t, gem.HealthFraction())
}
