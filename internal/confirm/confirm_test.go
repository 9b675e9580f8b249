package confirm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kyudon/police-intake/internal/confirm"
)

func TestConfirmSecondInvocationWithinWindow(t *testing.T) {
	table := confirm.New(time.Minute)

	assert.False(t, table.Confirm("g1", "u1"), "first invocation arms, does not confirm")
	assert.True(t, table.Pending("g1", "u1"))
	assert.True(t, table.Confirm("g1", "u1"), "second invocation confirms")
	assert.False(t, table.Pending("g1", "u1"), "confirmation consumes the entry")
}

func TestConfirmScopedToGuildAndActor(t *testing.T) {
	table := confirm.New(time.Minute)

	table.Confirm("g1", "u1")
	assert.False(t, table.Confirm("g2", "u1"), "same actor, different guild")
	assert.False(t, table.Confirm("g1", "u2"), "same guild, different actor")
	assert.True(t, table.Confirm("g1", "u1"))
}

func TestConfirmExpires(t *testing.T) {
	table := confirm.New(20 * time.Millisecond)

	assert.False(t, table.Confirm("g1", "u1"))

	assert.Eventually(t, func() bool {
		return !table.Pending("g1", "u1")
	}, time.Second, 5*time.Millisecond)

	assert.False(t, table.Confirm("g1", "u1"), "expired entry re-arms instead of confirming")
}

func TestConfirmCancelsTimerOnConfirmation(t *testing.T) {
	table := confirm.New(20 * time.Millisecond)

	table.Confirm("g1", "u1")
	assert.True(t, table.Confirm("g1", "u1"))

	// A new arm right after confirmation must not be swept by the old
	// entry's timer.
	assert.False(t, table.Confirm("g1", "u1"))
	time.Sleep(10 * time.Millisecond)
	assert.True(t, table.Pending("g1", "u1"))
}
