package resolve

import "fmt"

// DataIntegrityError indicates that an index embedded in one table points
// outside of the table it references.
type DataIntegrityError struct {
	Channel int
	Table   string
	Index   uint64
	Size    int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("channel %d: index %d is out of range for table %s with %d entries",
		e.Channel, e.Index, e.Table, e.Size)
}
