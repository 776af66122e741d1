package layout

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestR180(t *testing.T) {
	l := R180()

	assert.Equal(t, uint32(R180Base), l.Base())
	assert.Equal(t, R180Channels, l.Channels())
	assert.Len(t, l.Regions(), 8)

	tests := []struct {
		name   RegionName
		offset int64
		count  int
		stride int
	}{
		{DmacInfo, 0xDD5C64, 76, 8},
		{InterruptHandlers, 0xDD641C, 76, 8},
		{PackUnpackID, 0xDD5B34, 76, 4},
		{PackUnpackInfo, 0xDD5EC4, 0, 12},
		{DmacBoomerInfo, 0xDD608C, 76, 12},
		{BoomerVdKickInfo, 0xF73510, 265, 12},
		{BoomerSelector, 0xF72E08, 225, 4},
		{BoomerInputPort, 0xF7318C, 225, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			region, ok := l.Region(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.offset, region.Offset)
			assert.Equal(t, tt.count, region.Count)
			assert.Equal(t, tt.stride, region.Stride)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("offsets are relative to base", func(t *testing.T) {
		l := New(0x1000,
			Definition{Name: DmacInfo, Address: 0x1010, Count: 2, Stride: 8},
			Definition{Name: PackUnpackID, Address: 0x1000, Count: 2, Stride: 4},
		)

		region, ok := l.Region(DmacInfo)
		assert.True(t, ok)
		assert.Equal(t, int64(0x10), region.Offset)
		assert.Equal(t, uint32(0x1010), region.Address)
		assert.Equal(t, int64(16), region.Size())

		region, ok = l.Region(PackUnpackID)
		assert.True(t, ok)
		assert.Equal(t, int64(0), region.Offset)
	})

	t.Run("regions keep declaration order", func(t *testing.T) {
		l := New(0,
			Definition{Name: BoomerInputPort, Address: 0x20},
			Definition{Name: DmacInfo, Address: 0x10},
		)

		regions := l.Regions()
		assert.Equal(t, BoomerInputPort, regions[0].Name)
		assert.Equal(t, DmacInfo, regions[1].Name)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, ok := New(0).Region(DmacInfo)
		assert.False(t, ok)
	})

	t.Run("address below base panics", func(t *testing.T) {
		defer func() {
			assert.NotNil(t, recover())
		}()
		New(0x1000, Definition{Name: DmacInfo, Address: 0xFFF})
	})

	t.Run("duplicate region panics", func(t *testing.T) {
		defer func() {
			assert.NotNil(t, recover())
		}()
		New(0, Definition{Name: DmacInfo}, Definition{Name: DmacInfo})
	})
}

func TestRegionWithCount(t *testing.T) {
	region := Region{Name: PackUnpackInfo, Count: 0, Stride: 12}
	sized := region.WithCount(4)

	assert.Equal(t, 0, region.Count)
	assert.Equal(t, 4, sized.Count)
	assert.Equal(t, int64(48), sized.Size())
}
