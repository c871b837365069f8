package services

const (
	minPageSize     = 1
	defaultPageSize = 10
	maxPageSize     = 50
)

func normalizePage(p int) int {
	if p < 1 {
		return 1
	}
	return p
}

func normalizePageSize(i int) int {
	if i == 0 {
		return defaultPageSize
	}
	if i < minPageSize {
		return minPageSize
	}
	if i > maxPageSize {
		return maxPageSize
	}
	return i
}
