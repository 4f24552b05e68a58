package services

import (
	"github.com/deniz/eventhub/internal/pkg/helpers"
)

// offsetLimit converts 1-based page parameters to a SQL window.
func offsetLimit(page, size int) (uint64, int) {
	return helpers.CalculateOffsetLimit(page, size)
}
