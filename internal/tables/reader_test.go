package tables

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/edmacinfo/internal/layout"
	"github.com/retroenv/edmacinfo/internal/tables/tablestest"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestReader(t *testing.T, l layout.Layout, data []byte) *Reader {
	t.Helper()
	return NewReader(log.NewTestLogger(t), bytes.NewReader(data), l)
}

//nolint:funlen // test functions can be long
func TestReadAll(t *testing.T) {
	l := tablestest.Layout(3, 2, 2)
	img := tablestest.New(l).
		Put(layout.DmacInfo,
			[]uint32{0x1000, 0x3},
			[]uint32{0x2000, 0x80000001},
			[]uint32{0x3000, 0}).
		Put(layout.InterruptHandlers,
			[]uint32{0x2, 0xe05378d7},
			[]uint32{0x3, 0xe0537991},
			[]uint32{0x71, 0}).
		Words(layout.PackUnpackID, 0, 3, 1).
		Put(layout.PackUnpackInfo,
			[]uint32{0x500, 0, 0},
			[]uint32{0x510, 1, 1},
			[]uint32{0x520, 2, 2},
			[]uint32{0x530, 3, 3}).
		Put(layout.DmacBoomerInfo,
			[]uint32{0xFFFFFFFF, 0, 0},
			[]uint32{0x00010002, 0x1234, 0x56780000},
			[]uint32{0xFFFFFFFF, 0, 0}).
		Put(layout.BoomerVdKickInfo,
			[]uint32{0, 0, 0},
			[]uint32{1, 0xA1, 0xA2}).
		Words(layout.BoomerSelector, 0xB0, 0xB1).
		Words(layout.BoomerInputPort, 0xC0, 0xC1).
		Pad()

	tbl, err := newTestReader(t, l, img.Bytes()).ReadAll()
	assert.NoError(t, err)

	wantChannels := []ChannelInfo{
		{ID: 0, Address: 0x1000, Flags: 0x3},
		{ID: 1, Address: 0x2000, Flags: 0x80000001},
		{ID: 2, Address: 0x3000, Flags: 0},
	}
	if diff := cmp.Diff(wantChannels, tbl.Channels); diff != "" {
		t.Errorf("channel info mismatch (-want +got):\n%s", diff)
	}

	wantInterrupts := []InterruptBinding{
		{Channel: 0, Vector: 0x2, Handler: 0xe05378d7},
		{Channel: 1, Vector: 0x3, Handler: 0xe0537991},
		{Channel: 2, Vector: 0x71, Handler: 0},
	}
	if diff := cmp.Diff(wantInterrupts, tbl.Interrupts); diff != "" {
		t.Errorf("interrupt mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []uint32{0, 3, 1}, tbl.PackUnpackIndex)
	assert.Len(t, tbl.PackUnpack, 4)
	assert.Equal(t, PackUnpackRecord{ID: 3, Pointer: 0x530, Unknown: 3, Mode: 3}, tbl.PackUnpack[3])

	wantBoomers := []BoomerBinding{
		{Channel: 0, ID: BoomerUndefined},
		{Channel: 1, ID: 0x00010002, InSelectType: 0x1234, InSelectEdmacType: 0x56780000},
		{Channel: 2, ID: BoomerUndefined},
	}
	if diff := cmp.Diff(wantBoomers, tbl.Boomers); diff != "" {
		t.Errorf("boomer binding mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, VdKickRecord{ID: 1, VdType: 1, Addr1: 0xA1, Addr2: 0xA2}, tbl.VdKicks[1])
	assert.Equal(t, []uint32{0xB0, 0xB1}, tbl.Selectors)
	assert.Equal(t, []uint32{0xC0, 0xC1}, tbl.InputPorts)
}

func TestPackUnpackCount(t *testing.T) {
	tests := []struct {
		name  string
		index []uint32
		want  uint64
	}{
		{name: "empty", index: nil, want: 0},
		{name: "single zero", index: []uint32{0}, want: 1},
		{name: "unordered", index: []uint32{0, 3, 1}, want: 4},
		{name: "shared ids", index: []uint32{2, 2, 2}, want: 3},
		{name: "highest id", index: []uint32{0xFFFFFFFF}, want: 0x100000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackUnpackCount(tt.index))
		})
	}
}

func TestReadPackUnpackRecordsSizedByIndex(t *testing.T) {
	l := tablestest.Layout(3, 0, 0)
	img := tablestest.New(l).
		Words(layout.PackUnpackID, 0, 3, 1).
		Pad()
	reader := newTestReader(t, l, img.Bytes())

	index, err := reader.ReadPackUnpackIndex()
	assert.NoError(t, err)

	records, err := reader.ReadPackUnpackRecords(PackUnpackCount(index))
	assert.NoError(t, err)
	assert.Len(t, records, 4)
	for i, rec := range records {
		assert.Equal(t, i, rec.ID)
	}
}

func TestFieldsAreUnsignedLittleEndian(t *testing.T) {
	l := tablestest.Layout(1, 1, 0)
	img := tablestest.New(l).
		Put(layout.DmacInfo, []uint32{0xFFFFFFFF, 0x80000000}).
		Put(layout.BoomerVdKickInfo, []uint32{0x7FFFFFFF, 0x01020304, 0xFEDCBA98}).
		Pad()

	data := img.Bytes()
	region, _ := l.Region(layout.BoomerVdKickInfo)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data[region.Offset+4:region.Offset+8])

	reader := newTestReader(t, l, data)
	channels, err := reader.ReadChannelInfo()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), channels[0].Address)
	assert.Equal(t, uint32(0x80000000), channels[0].Flags)

	kicks, err := reader.ReadVdKickRecords()
	assert.NoError(t, err)
	assert.Equal(t, VdKickRecord{ID: 0, VdType: 0x7FFFFFFF, Addr1: 0x01020304, Addr2: 0xFEDCBA98}, kicks[0])
}

func TestTruncatedInput(t *testing.T) {
	l := tablestest.Layout(2, 0, 0)

	tests := []struct {
		name string
		size int
		read func(r *Reader) error
		want TruncatedInputError
	}{
		{
			name: "ends inside a record",
			size: 12,
			read: func(r *Reader) error {
				_, err := r.ReadChannelInfo()
				return err
			},
			want: TruncatedInputError{Region: "DmacInfo", Offset: 0, Want: 16, Got: 12},
		},
		{
			name: "region starts after end of file",
			size: 8,
			read: func(r *Reader) error {
				_, err := r.ReadInterruptBindings()
				return err
			},
			want: TruncatedInputError{Region: "InterruptHandlers", Offset: 16, Want: 16, Got: 0},
		},
		{
			name: "pack unpack records beyond index",
			size: 40,
			read: func(r *Reader) error {
				_, err := r.ReadPackUnpackRecords(20)
				return err
			},
			want: TruncatedInputError{Region: "PackUnpackInfo", Offset: 40, Want: 240, Got: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := newTestReader(t, l, make([]byte, tt.size))
			err := tt.read(reader)
			assert.Error(t, err)

			var truncated *TruncatedInputError
			assert.True(t, errors.As(err, &truncated))
			assert.Equal(t, tt.want, *truncated)
		})
	}
}

func TestReadAllPackUnpackIndexBeyondImage(t *testing.T) {
	l := tablestest.Layout(1, 0, 0)
	region, _ := l.Region(layout.PackUnpackInfo)

	tests := []struct {
		name string
		id   uint32
		want int64
	}{
		{name: "large id", id: 0x40000000, want: 0x40000001 * 12},
		{name: "highest id", id: 0xFFFFFFFF, want: 0x100000000 * 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tablestest.New(l).
				Words(layout.PackUnpackID, tt.id).
				Pad().
				Bytes()

			_, err := newTestReader(t, l, data).ReadAll()
			assert.Error(t, err)

			var truncated *TruncatedInputError
			assert.True(t, errors.As(err, &truncated))
			assert.Equal(t, TruncatedInputError{
				Region: "PackUnpackInfo",
				Offset: region.Offset,
				Want:   tt.want,
				Got:    int64(len(data)) - region.Offset,
			}, *truncated)
		})
	}
}

func TestReadErrors(t *testing.T) {
	t.Run("missing region", func(t *testing.T) {
		l := layout.New(0, layout.Definition{Name: layout.DmacInfo, Count: 1, Stride: 8})
		reader := newTestReader(t, l, make([]byte, 64))

		_, err := reader.ReadBoomerBindings()
		assert.ErrorContains(t, err, "not part of the layout")
	})

	t.Run("stride does not match record", func(t *testing.T) {
		l := layout.New(0, layout.Definition{Name: layout.DmacInfo, Count: 1, Stride: 12})
		reader := newTestReader(t, l, make([]byte, 64))

		_, err := reader.ReadChannelInfo()
		assert.ErrorContains(t, err, "stride 12")
	})
}
