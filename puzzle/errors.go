package puzzle

import "errors"

var (
	// ErrInvalidDimensions means a picture cannot be cut into the requested grid
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrIndexOutOfRange means a tile index outside [0, rows*cols)
	ErrIndexOutOfRange = errors.New("tile index out of range")
	// ErrNoImagesAvailable means the picture repository is empty
	ErrNoImagesAvailable = errors.New("no pictures available")
)
