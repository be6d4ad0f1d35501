package model

import (
	"math"
	"strconv"
)

// MaxID is the largest key a SERIAL column can hold.
const MaxID = math.MaxInt32

// ParseID parses a record key. Anything that is not an integer in 1..MaxID
// cannot name a stored row and reports false.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 || id > MaxID {
		return 0, false
	}
	return id, true
}
