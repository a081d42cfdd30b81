package pagination

import "math"

// CalculateOffset returns the number of records to skip for a 1-based page index.
//
// Examples:
//   - Page 1, Size 5 -> Offset 0
//   - Page 3, Size 5 -> Offset 10
//
// Offsets that would overflow int saturate at math.MaxInt, which still lands past
// the last record.
func CalculateOffset(pageIndex, pageSize int) int {
	if pageIndex <= 1 || pageSize <= 0 {
		return 0
	}
	if pageIndex-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (pageIndex - 1) * pageSize
}

// CalculateTotalPages returns ceil(totalRecords / pageSize).
//
// An empty result set has zero pages. A non-positive pageSize also yields zero.
//
// Examples:
//   - Total 0, Size 5 -> 0 pages
//   - Total 5, Size 5 -> 1 page
//   - Total 6, Size 5 -> 2 pages
func CalculateTotalPages(totalRecords int64, pageSize int) int {
	if totalRecords <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	pages := totalRecords / size
	if totalRecords%size != 0 {
		pages++
	}
	return int(pages)
}
