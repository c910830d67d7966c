package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Operation succeeded
	SymbolFail    = "✗" // Operation failed
	SymbolBullet  = "•" // List item
)
