package puzzle

import "time"

const (
	minGridSize = 3
	maxGridSize = 6
	// Levels per step up in grid size
	levelsPerSize = 5

	baseTimeLimit = 60 * time.Second
	timeLimitStep = 15 * time.Second
	baseMoveLimit = 50
	moveLimitStep = 10
)

// Difficulty holds the parameters a level is played with
type Difficulty struct {
	GridSize  int
	TimeLimit time.Duration
	MoveLimit int
}

// DifficultyFor derives the grid size and limits of a level: 3x3 for levels
// 1-4, 4x4 for 5-9, 5x5 for 10-14 and 6x6 from 15 on. Each extra row and
// column adds 15 seconds and 10 moves. Levels below 1 play as level 1.
func DifficultyFor(level int) Difficulty {
	if level < 1 {
		level = 1
	}

	size := minGridSize + level/levelsPerSize
	if size > maxGridSize {
		size = maxGridSize
	}

	steps := size - minGridSize
	return Difficulty{
		GridSize:  size,
		TimeLimit: baseTimeLimit + time.Duration(steps)*timeLimitStep,
		MoveLimit: baseMoveLimit + steps*moveLimitStep,
	}
}
