package crud

import "errors"

// Sentinel errors dari service layer. Handler yang memetakan ke status HTTP.
var (
	// ErrNotFound berarti operasi menarget row yang tidak ada.
	ErrNotFound = errors.New("record not found")

	// ErrInternal berarti insert tidak mengembalikan row sama sekali.
	// Normalnya tidak pernah terjadi; ini anomali di persistence layer.
	ErrInternal = errors.New("insert returned no row")
)
