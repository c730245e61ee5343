package models_base

// pad4 rounds n up to the next multiple of 4. Diameter AVPs are aligned
// to 32-bit boundaries on the wire.
func pad4(n int) int {
	return (n + 3) &^ 3
}
