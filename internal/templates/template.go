package templates

// TemplateExercise is one exercise slot in a workout template.
type TemplateExercise struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	DefaultSets  int    `json:"defaultSets"`
	DefaultReps  int    `json:"defaultReps"`
	Order        int    `json:"order"`
}

// Template is a named, reusable list of exercises with default set/rep
// counts, optionally scoped to body groups.
type Template struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Exercises     []TemplateExercise `json:"exercises"`
	BodyGroupIDs  []string           `json:"bodyGroups"`
	EstimatedTime int                `json:"estimatedTime,omitempty"` // minutes
}

// DefaultTemplates returns the seed list for the static repo.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name: "Chest & Triceps",
			Exercises: []TemplateExercise{
				{ExerciseName: "Bench Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Push-ups", DefaultSets: 3, DefaultReps: 15},
				{ExerciseName: "Tricep Dips", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Skull Crushers", DefaultSets: 3, DefaultReps: 10},
			},
		},
		{
			Name: "Back & Biceps",
			Exercises: []TemplateExercise{
				{ExerciseName: "Pull-ups", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Rows", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Bicep Curls", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Hammer Curls", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Back",
			Exercises: []TemplateExercise{
				{ExerciseName: "Pull-ups", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Rows", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Biceps",
			Exercises: []TemplateExercise{
				{ExerciseName: "Bicep Curls", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Hammer Curls", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Shoulders",
			Exercises: []TemplateExercise{
				{ExerciseName: "Shoulder Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Lateral Raises", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Legs",
			Exercises: []TemplateExercise{
				{ExerciseName: "Squats", DefaultSets: 4, DefaultReps: 10},
				{ExerciseName: "Lunges", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Shoulders & Legs",
			Exercises: []TemplateExercise{
				{ExerciseName: "Shoulder Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Lateral Raises", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Squats", DefaultSets: 4, DefaultReps: 10},
				{ExerciseName: "Lunges", DefaultSets: 3, DefaultReps: 12},
			},
		},
		{
			Name: "Shoulders & Triceps",
			Exercises: []TemplateExercise{
				{ExerciseName: "Shoulder Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Lateral Raises", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Tricep Dips", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Skull Crushers", DefaultSets: 3, DefaultReps: 10},
			},
		},
		{
			Name: "Core",
			Exercises: []TemplateExercise{
				{ExerciseName: "Planks", DefaultSets: 3, DefaultReps: 60},
				{ExerciseName: "Crunches", DefaultSets: 3, DefaultReps: 20},
			},
		},
		{
			Name: "Climbing",
			Exercises: []TemplateExercise{
				{ExerciseName: "Bouldering", DefaultSets: 1, DefaultReps: 1},
			},
		},
		{
			Name: "Full Body",
			Exercises: []TemplateExercise{
				{ExerciseName: "Squats", DefaultSets: 4, DefaultReps: 10},
				{ExerciseName: "Bench Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Pull-ups", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Shoulder Press", DefaultSets: 3, DefaultReps: 10},
				{ExerciseName: "Rows", DefaultSets: 3, DefaultReps: 12},
				{ExerciseName: "Planks", DefaultSets: 3, DefaultReps: 60},
			},
		},
	}
}
