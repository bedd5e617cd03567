package services

import "errors"

// Common service-level errors
var (
	// Chart errors
	ErrChartNotFound = errors.New("chart not found")
	ErrChartTooLarge = errors.New("chart would exceed the maximum number of entries")
	ErrInvalidSeed   = errors.New("invalid seed")

	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrWouldCreateCycle = errors.New("attachment would create a reporting cycle")
)
