package utils

// SQLite has no boolean column type.

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func IntToBool(i int64) bool {
	return i != 0
}
