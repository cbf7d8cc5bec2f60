package arr

import "errors"

// ErrIncomparable is returned by SortByProperty when the sort keys cannot be
// ordered against each other.
var ErrIncomparable = errors.New("arr: values are not comparable")
