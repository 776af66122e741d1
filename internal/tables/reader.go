// Package tables decodes the fixed size EDMAC configuration records of a
// firmware image.
package tables

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/edmacinfo/internal/layout"
	"github.com/retroenv/retrogolib/log"
)

const fieldSize = 4

// Reader reads table regions from a single image handle. It is not safe for
// concurrent use.
type Reader struct {
	logger *log.Logger
	image  io.ReadSeeker
	layout layout.Layout
}

// NewReader creates a reader for the given image and layout.
func NewReader(logger *log.Logger, image io.ReadSeeker, l layout.Layout) *Reader {
	return &Reader{
		logger: logger,
		image:  image,
		layout: l,
	}
}

// ReadAll reads all tables. The pack/unpack index table is read before the
// pack/unpack records as it determines their count.
func (r *Reader) ReadAll() (*Tables, error) {
	var t Tables
	var err error

	if t.Channels, err = r.ReadChannelInfo(); err != nil {
		return nil, err
	}
	if t.Interrupts, err = r.ReadInterruptBindings(); err != nil {
		return nil, err
	}
	if t.PackUnpackIndex, err = r.ReadPackUnpackIndex(); err != nil {
		return nil, err
	}
	if t.PackUnpack, err = r.ReadPackUnpackRecords(PackUnpackCount(t.PackUnpackIndex)); err != nil {
		return nil, err
	}
	if t.Boomers, err = r.ReadBoomerBindings(); err != nil {
		return nil, err
	}
	if t.VdKicks, err = r.ReadVdKickRecords(); err != nil {
		return nil, err
	}
	if t.Selectors, err = r.ReadSelectors(); err != nil {
		return nil, err
	}
	if t.InputPorts, err = r.ReadInputPorts(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ReadChannelInfo reads the per channel address and flags.
func (r *Reader) ReadChannelInfo() ([]ChannelInfo, error) {
	data, region, err := r.readRegion(layout.DmacInfo, 2)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(i int, rec []byte) ChannelInfo {
		return ChannelInfo{
			ID:      i,
			Address: field(rec, 0),
			Flags:   field(rec, 1),
		}
	}), nil
}

// ReadInterruptBindings reads the per channel interrupt vector and handler.
func (r *Reader) ReadInterruptBindings() ([]InterruptBinding, error) {
	data, region, err := r.readRegion(layout.InterruptHandlers, 2)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(i int, rec []byte) InterruptBinding {
		return InterruptBinding{
			Channel: i,
			Vector:  field(rec, 0),
			Handler: field(rec, 1),
		}
	}), nil
}

// ReadPackUnpackIndex reads the pack/unpack ID of every channel.
func (r *Reader) ReadPackUnpackIndex() ([]uint32, error) {
	return r.readWords(layout.PackUnpackID)
}

// PackUnpackCount returns the number of pack/unpack records that the index
// table references, which is the highest referenced ID plus one.
func PackUnpackCount(index []uint32) uint64 {
	if len(index) == 0 {
		return 0
	}
	highest := index[0]
	for _, id := range index[1:] {
		highest = max(highest, id)
	}
	return uint64(highest) + 1
}

// ReadPackUnpackRecords reads count pack/unpack records. The count comes from
// image data and is checked against the image size before anything is read.
func (r *Reader) ReadPackUnpackRecords(count uint64) ([]PackUnpackRecord, error) {
	region, err := r.region(layout.PackUnpackInfo)
	if err != nil {
		return nil, err
	}
	if err := r.checkBounds(region, count*uint64(region.Stride)); err != nil {
		return nil, err
	}

	data, err := r.read(region.WithCount(int(count)), 3)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(i int, rec []byte) PackUnpackRecord {
		return PackUnpackRecord{
			ID:      i,
			Pointer: field(rec, 0),
			Unknown: field(rec, 1),
			Mode:    field(rec, 2),
		}
	}), nil
}

// ReadBoomerBindings reads the Boomer binding of every channel.
func (r *Reader) ReadBoomerBindings() ([]BoomerBinding, error) {
	data, region, err := r.readRegion(layout.DmacBoomerInfo, 3)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(i int, rec []byte) BoomerBinding {
		return BoomerBinding{
			Channel:           i,
			ID:                BoomerID(field(rec, 0)),
			InSelectType:      field(rec, 1),
			InSelectEdmacType: field(rec, 2),
		}
	}), nil
}

// ReadVdKickRecords reads the Boomer VD kick info table.
func (r *Reader) ReadVdKickRecords() ([]VdKickRecord, error) {
	data, region, err := r.readRegion(layout.BoomerVdKickInfo, 3)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(i int, rec []byte) VdKickRecord {
		return VdKickRecord{
			ID:     i,
			VdType: field(rec, 0),
			Addr1:  field(rec, 1),
			Addr2:  field(rec, 2),
		}
	}), nil
}

// ReadSelectors reads the Boomer selector address table.
func (r *Reader) ReadSelectors() ([]uint32, error) {
	return r.readWords(layout.BoomerSelector)
}

// ReadInputPorts reads the Boomer input port address table.
func (r *Reader) ReadInputPorts() ([]uint32, error) {
	return r.readWords(layout.BoomerInputPort)
}

func (r *Reader) readWords(name layout.RegionName) ([]uint32, error) {
	data, region, err := r.readRegion(name, 1)
	if err != nil {
		return nil, err
	}
	return decode(data, region.Stride, func(_ int, rec []byte) uint32 {
		return field(rec, 0)
	}), nil
}

func (r *Reader) region(name layout.RegionName) (layout.Region, error) {
	region, ok := r.layout.Region(name)
	if !ok {
		return layout.Region{}, fmt.Errorf("region %s is not part of the layout", name)
	}
	return region, nil
}

func (r *Reader) readRegion(name layout.RegionName, fields int) ([]byte, layout.Region, error) {
	region, err := r.region(name)
	if err != nil {
		return nil, layout.Region{}, err
	}
	data, err := r.read(region, fields)
	if err != nil {
		return nil, layout.Region{}, err
	}
	return data, region, nil
}

// checkBounds returns a TruncatedInputError if the image ends before size
// bytes starting at the region offset.
func (r *Reader) checkBounds(region layout.Region, size uint64) error {
	end, err := r.image.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("determining image size: %w", err)
	}

	available := max(end-region.Offset, 0)
	if size <= uint64(available) {
		return nil
	}
	return &TruncatedInputError{
		Region: string(region.Name),
		Offset: region.Offset,
		Want:   int64(size),
		Got:    available,
	}
}

// read seeks to the region and reads all of its records.
func (r *Reader) read(region layout.Region, fields int) ([]byte, error) {
	if region.Stride != fields*fieldSize {
		return nil, fmt.Errorf("region %s has stride %d, record needs %d bytes",
			region.Name, region.Stride, fields*fieldSize)
	}
	if err := r.checkBounds(region, uint64(region.Size())); err != nil {
		return nil, err
	}

	if _, err := r.image.Seek(region.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to region %s: %w", region.Name, err)
	}
	r.logger.Debug("Reading region",
		log.String("region", string(region.Name)),
		log.String("address", fmt.Sprintf("0x%08X", region.Address)),
		log.String("base", fmt.Sprintf("0x%08X", r.layout.Base())),
		log.String("start", fmt.Sprintf("0x%X", region.Offset)),
		log.Int("records", region.Count))

	data := make([]byte, region.Size())
	n, err := io.ReadFull(r.image, data)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &TruncatedInputError{
				Region: string(region.Name),
				Offset: region.Offset,
				Want:   int64(len(data)),
				Got:    int64(n),
			}
		}
		return nil, fmt.Errorf("reading region %s: %w", region.Name, err)
	}
	return data, nil
}

func decode[T any](data []byte, stride int, record func(i int, rec []byte) T) []T {
	records := make([]T, len(data)/stride)
	for i := range records {
		records[i] = record(i, data[i*stride:(i+1)*stride])
	}
	return records
}

// field returns the little-endian 32-bit field at the given index of a record.
func field(rec []byte, index int) uint32 {
	return binary.LittleEndian.Uint32(rec[index*fieldSize:])
}
