package models

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type Category struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type Course struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"categoryId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Duration    string         `json:"duration"`
	Level       Level          `json:"level"`
	Content     string         `json:"content"`
	Resources   []Resource     `json:"resources"`
	Quiz        []QuizQuestion `json:"quiz"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type InterviewQuestion struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Difficulty   Difficulty `json:"difficulty"`
	Tags         []string   `json:"tags"`
	Answer       string     `json:"answer"`
	ResourceLink string     `json:"resourceLink"`
}

type Company struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Logo        string              `json:"logo"`
	Description string              `json:"description"`
	Roles       []string            `json:"roles"`
	Difficulty  string              `json:"difficulty"`
	Focus       []string            `json:"focus"`
	Questions   []InterviewQuestion `json:"questions"`
}

type OnboardingOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// OnboardingQuestion is one step of the onboarding questionnaire. ID names
// the settings field the answer is written to; Type is "single" or "multi".
type OnboardingQuestion struct {
	ID       string             `json:"id" yaml:"id"`
	Question string             `json:"question" yaml:"question"`
	Type     string             `json:"type" yaml:"type"`
	Options  []OnboardingOption `json:"options" yaml:"options"`
}
