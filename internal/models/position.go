package models

// PortfolioPosition is the number of shares held for one ticker.
// A position exists only while Shares is positive.
type PortfolioPosition struct {
	Base
	Symbol string  `gorm:"not null;size:32;uniqueIndex:uq_portfolio_positions_symbol" json:"symbol"`
	Shares float64 `gorm:"not null" json:"shares"`
}

// PositionEventKind describes how a position changed.
type PositionEventKind string

const (
	PositionCreated PositionEventKind = "created"
	PositionUpdated PositionEventKind = "updated"
	PositionRemoved PositionEventKind = "removed"
)

// PositionEvent is emitted after a position change has been persisted.
type PositionEvent struct {
	Kind   PositionEventKind `json:"kind"`
	Symbol string            `json:"symbol"`
	Shares float64           `json:"shares"`
}
