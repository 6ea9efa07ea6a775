package testutil

import (
	"testing"

	"gorm.io/gorm"

	"investtrack/internal/models"
)

// CreateTestPosition inserts a position directly, bypassing the service.
func CreateTestPosition(t *testing.T, db *gorm.DB, symbol string, shares float64) *models.PortfolioPosition {
	t.Helper()

	pos := &models.PortfolioPosition{Symbol: symbol, Shares: shares}
	if err := db.Create(pos).Error; err != nil {
		t.Fatalf("failed to create test position: %v", err)
	}
	return pos
}

// CountPositions returns the number of stored positions.
func CountPositions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.PortfolioPosition{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count positions: %v", err)
	}
	return n
}
