package tables

import "fmt"

// TruncatedInputError indicates that the image ends inside a table region.
type TruncatedInputError struct {
	Region string
	Offset int64
	Want   int64
	Got    int64
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input in region %s at offset 0x%X: need %d bytes, got %d",
		e.Region, e.Offset, e.Want, e.Got)
}
