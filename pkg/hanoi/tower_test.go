package hanoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/matzehuels/hanoi/pkg/errors"
)

func TestNewTower(t *testing.T) {
	tower := NewTower(4)

	assert.Equal(t, 4, tower.Count(Source))
	assert.Equal(t, 0, tower.Count(Auxiliary))
	assert.Equal(t, 0, tower.Count(Destination))
	assert.Equal(t, 4, tower.Total())
	assert.Equal(t, []Disk{{4}, {3}, {2}, {1}}, tower.Disks(Source))

	top, ok := tower.Peek(Source)
	require.True(t, ok)
	assert.Equal(t, 1, top.Size)
}

func TestNewTower_Empty(t *testing.T) {
	tower := NewTower(0)
	assert.Equal(t, 0, tower.Total())
	_, ok := tower.Peek(Source)
	assert.False(t, ok)
}

func TestTower_PopPush(t *testing.T) {
	tower := NewTower(2)

	d, err := tower.Pop(Source)
	require.NoError(t, err)
	assert.Equal(t, Disk{Size: 1}, d)
	assert.Equal(t, 1, tower.Total(), "popped disk belongs to no peg")

	require.NoError(t, tower.Push(Auxiliary, d))
	assert.Equal(t, []Disk{{1}}, tower.Disks(Auxiliary))
}

func TestTower_PushLargerOnSmaller(t *testing.T) {
	tower := NewTower(2)
	small, err := tower.Pop(Source)
	require.NoError(t, err)
	require.NoError(t, tower.Push(Auxiliary, small))

	large, err := tower.Pop(Source)
	require.NoError(t, err)

	err = tower.Push(Auxiliary, large)
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvariant))
	assert.Equal(t, []Disk{{1}}, tower.Disks(Auxiliary), "failed push leaves peg unchanged")
}

func TestTower_PopEmpty(t *testing.T) {
	tower := NewTower(1)
	_, err := tower.Pop(Destination)
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvariant))
}

func TestTower_InvalidPeg(t *testing.T) {
	tower := NewTower(1)
	_, err := tower.Pop(Peg(5))
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvariant))
	assert.True(t, herrors.Is(tower.Push(Peg(-1), Disk{1}), herrors.ErrCodeInvariant))
	assert.Equal(t, 0, tower.Count(Peg(3)))
	assert.Nil(t, tower.Disks(Peg(3)))
}

func TestTower_DisksIsCopy(t *testing.T) {
	tower := NewTower(3)
	disks := tower.Disks(Source)
	disks[0] = Disk{Size: 99}
	assert.Equal(t, 3, tower.Disks(Source)[0].Size)
}

func TestDisk_Color(t *testing.T) {
	assert.Equal(t, "#FF8C00", Disk{Size: 1}.Color())
	assert.Equal(t, "#9400D3", Disk{Size: 5}.Color())
	assert.Equal(t, "#DC143C", Disk{Size: 6}.Color())
}
