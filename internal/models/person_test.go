package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	p := NewPerson("Alice")
	assert.Equal(t, "Alice", p.Name)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Zero(t, p.FriendCount())
	assert.Empty(t, p.Friends())
}

func TestAddFriend(t *testing.T) {
	alice := NewPerson("Alice")
	bob := NewPerson("Bob")
	carol := NewPerson("Carol")

	require.True(t, alice.AddFriend(bob))
	require.True(t, alice.AddFriend(carol))
	assert.Equal(t, []uuid.UUID{bob.ID, carol.ID}, alice.Friends())

	// the other side is never touched
	assert.False(t, bob.HasFriend(alice.ID))
	assert.Zero(t, bob.FriendCount())
}

func TestAddFriendDuplicate(t *testing.T) {
	alice := NewPerson("Alice")
	bob := NewPerson("Bob")

	require.True(t, alice.AddFriend(bob))
	assert.False(t, alice.AddFriend(bob), "second add should report an existing friend")
	assert.Equal(t, 1, alice.FriendCount())
}

func TestFriendsReturnsCopy(t *testing.T) {
	alice := NewPerson("Alice")
	bob := NewPerson("Bob")
	alice.AddFriend(bob)

	fs := alice.Friends()
	fs[0] = uuid.Nil
	assert.True(t, alice.HasFriend(bob.ID))
	assert.Equal(t, bob.ID, alice.Friends()[0])
}

func TestZeroValuePerson(t *testing.T) {
	var p Person
	other := NewPerson("Bob")
	assert.True(t, p.AddFriend(other))
	assert.True(t, p.HasFriend(other.ID))
}
