package schedule

// Session progress types mirror the client's locally persisted state
// (inProgressWorkout / workoutProgress / personalBestsAchieved keys). The
// server never stores any of this, it only defines the serialization the
// client and the API responses agree on.

type InProgressWorkout struct {
	Date      string `json:"date"`
	StartedAt string `json:"startedAt"`
}

type ExerciseProgress struct {
	PageID       string  `json:"pageId"`
	ExerciseName string  `json:"exerciseName"`
	DefaultSets  int     `json:"defaultSets"`
	DefaultReps  int     `json:"defaultReps"`
	ActualSets   int     `json:"actualSets"`
	ActualReps   int     `json:"actualReps"`
	MaxWeight    float64 `json:"maxWeight"`
	Completed    bool    `json:"completed"`
}

type PersonalBestAchieved struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
}
