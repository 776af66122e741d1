package symbols

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestTracker(t *testing.T) {
	t.Run("new tracker is empty", func(t *testing.T) {
		tracker := NewTracker()

		assert.NotNil(t, tracker)
		assert.Empty(t, tracker.Tables())
		assert.Empty(t, tracker.Unresolved("IVT"))
	})

	t.Run("resolve known code", func(t *testing.T) {
		tracker := NewTracker()
		table := New("flags", map[uint32]string{0: "WRITE"})

		name, ok := tracker.Resolve(table, 0)
		assert.True(t, ok)
		assert.Equal(t, "WRITE", name)
		assert.Empty(t, tracker.Tables())
	})

	t.Run("resolve unknown code marks it", func(t *testing.T) {
		tracker := NewTracker()
		table := New("flags", map[uint32]string{0: "WRITE"})

		name, ok := tracker.Resolve(table, 2)
		assert.False(t, ok)
		assert.Equal(t, "", name)
		assert.Equal(t, []uint32{2}, tracker.Unresolved("flags"))
		assert.Empty(t, tracker.Unresolved("other"))
		assert.Equal(t, []string{"flags"}, tracker.Tables())
	})

	t.Run("unresolved codes are sorted and unique", func(t *testing.T) {
		tracker := NewTracker()
		tracker.MarkUnresolved("b", 7)
		tracker.MarkUnresolved("a", 9)
		tracker.MarkUnresolved("a", 3)
		tracker.MarkUnresolved("a", 9)

		assert.Equal(t, []string{"a", "b"}, tracker.Tables())
		assert.Equal(t, []uint32{3, 9}, tracker.Unresolved("a"))
		assert.Equal(t, []uint32{7}, tracker.Unresolved("b"))
	})
}

func TestTable(t *testing.T) {
	table := New("test", map[uint32]string{0x10: "B", 0x01: "A"})

	assert.Equal(t, "test", table.Name())
	assert.Equal(t, 2, table.Len())
	_, ok := table.Lookup(0x11)
	assert.False(t, ok)
	assert.Equal(t, []uint32{0x01, 0x10}, table.Codes())

	name, ok := table.Lookup(0x01)
	assert.True(t, ok)
	assert.Equal(t, "A", name)
}

func TestStaticTables(t *testing.T) {
	assert.Equal(t, 512, IVT.Len())
	assert.Equal(t, []uint32{0, 0x1FF}, []uint32{IVT.Codes()[0], IVT.Codes()[511]})

	name, ok := IVT.Lookup(0x002)
	assert.True(t, ok)
	assert.Equal(t, "EDOMAIN_EDMAC_5_WR_S1", name)

	name, ok = ISRs.Lookup(0xE05378D7)
	assert.True(t, ok)
	assert.Equal(t, "EDMAC_ReadISR", name)
	_, ok = ISRs.Lookup(0xE05378D6)
	assert.False(t, ok)

	name, ok = ChannelFlags.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "INFO_DMAC_TYPE_READ", name)

	name, ok = BoomerVdTypes.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "E_BOOMER_VD_KICK", name)

	assert.Equal(t, []*Table{ChasePorts, SelectIDs}, References())
	assert.Equal(t, []uint32{0x2E}, ChasePorts.Codes())
	assert.Equal(t, []uint32{0xD70000, 0xD80000, 0xD90000}, SelectIDs.Codes())

	catalog := Default()
	assert.Equal(t, IVT, catalog.Vectors)
	assert.Equal(t, PackUnpackModes, catalog.PackModes)
}
