package shared

import "strconv"

// FormatNumber renders a float in its shortest form: 12000, 3.5, 67.5.
// Used for every number that ends up in human-readable record output.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
