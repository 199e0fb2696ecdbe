package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveliev/arena/internal/core"
	"github.com/saveliev/arena/internal/domain"
)

func TestRoomStore_Create(t *testing.T) {
	s := core.NewRoomStore()

	room, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, domain.RoomName("Alpha"), room.Name)
	assert.Equal(t, 4, room.PlayerLimit)
	require.Len(t, room.Players, 1)

	creator := room.Players["s1"]
	require.NotNil(t, creator)
	assert.Equal(t, "s1", creator.ID)
	assert.Equal(t, "A", creator.Name)
	assert.Equal(t, 0, creator.Score)

	assert.NotNil(t, room.Foods)
	assert.Empty(t, room.Foods)
}

func TestRoomStore_Create_NameTaken(t *testing.T) {
	s := core.NewRoomStore()

	_, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)

	room, err := s.Create("Alpha", 2, "s2", "B")
	assert.ErrorIs(t, err, domain.ErrNameTaken)
	assert.Nil(t, room)
	assert.Equal(t, 1, s.Len())

	// Exact case-sensitive match only.
	_, err = s.Create("alpha", 2, "s2", "B")
	assert.NoError(t, err)
}

func TestRoomStore_Create_FreshIDs(t *testing.T) {
	s := core.NewRoomStore()

	r1, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)
	r2, err := s.Create("Beta", 4, "s2", "B")
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestRoomStore_Join(t *testing.T) {
	s := core.NewRoomStore()
	created, err := s.Create("Alpha", 2, "s1", "A")
	require.NoError(t, err)

	tests := []struct {
		name    string
		roomID  domain.RoomID
		sid     core.SessionID
		wantErr error
	}{
		{name: "joins existing room", roomID: created.ID, sid: "s2"},
		{name: "unknown room id", roomID: "nope", sid: "s3", wantErr: domain.ErrRoomNotFound},
		{name: "room at capacity", roomID: created.ID, sid: "s3", wantErr: domain.ErrRoomFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := s.Join(tt.roomID, tt.sid, "P")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, room)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, room.Players, string(tt.sid))
			assert.Equal(t, 0, room.Players[string(tt.sid)].Score)
		})
	}

	// The failed join must not have changed membership.
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].PlayerCount)
	assert.Equal(t, 2, list[0].PlayerLimit)
}

func TestRoomStore_Join_NeverExceedsLimit(t *testing.T) {
	s := core.NewRoomStore()
	created, err := s.Create("Solo", 1, "s1", "A")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.Join(created.ID, core.SessionID(fmt.Sprintf("p%d", n)), "P")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.ErrorIs(t, err, domain.ErrRoomFull)
	}
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].PlayerCount)
}

func TestRoomStore_SnapshotIsolation(t *testing.T) {
	s := core.NewRoomStore()
	room, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)

	// Mutating the returned snapshot must not leak into the store.
	room.Players["ghost"] = domain.NewPlayer("ghost", "G")
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].PlayerCount)
}

func TestRoomStore_RemoveSession(t *testing.T) {
	s := core.NewRoomStore()

	alpha, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)
	beta, err := s.Create("Beta", 4, "s1", "A")
	require.NoError(t, err)
	_, err = s.Join(alpha.ID, "s2", "B")
	require.NoError(t, err)

	// s1 is a member of both rooms; removal touches both, deletes Beta.
	affected := s.RemoveSession("s1")
	assert.ElementsMatch(t, []domain.RoomID{alpha.ID, beta.ID}, affected)
	require.Equal(t, 1, s.Len())

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, alpha.ID, list[0].ID)
	assert.Equal(t, 1, list[0].PlayerCount)

	// A deleted room id is never reusable.
	_, err = s.Join(beta.ID, "s3", "C")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	// Unknown sessions touch nothing.
	assert.Empty(t, s.RemoveSession("nobody"))
}

func TestRoomStore_EmptyRoomDisappears(t *testing.T) {
	s := core.NewRoomStore()

	room, err := s.Create("Gamma", 2, "s1", "A")
	require.NoError(t, err)
	_, err = s.Join(room.ID, "s2", "B")
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].PlayerCount)

	s.RemoveSession("s1")
	s.RemoveSession("s2")
	assert.Empty(t, s.List())
	assert.Empty(t, s.MemberIDs(room.ID))
}

func TestRoomStore_MemberIDs(t *testing.T) {
	s := core.NewRoomStore()
	room, err := s.Create("Alpha", 4, "s1", "A")
	require.NoError(t, err)
	_, err = s.Join(room.ID, "s2", "B")
	require.NoError(t, err)

	assert.ElementsMatch(t, []core.SessionID{"s1", "s2"}, s.MemberIDs(room.ID))
	assert.Nil(t, s.MemberIDs("nope"))
}
