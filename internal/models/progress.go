package models

import "time"

// PassingScore is the minimum quiz score that passes a course.
const PassingScore = 70

// DateLayout is the layout of CourseProgress.CompletedDate.
const DateLayout = "2006-01-02"

// CourseProgress is the outcome of one course on this device.
type CourseProgress struct {
	CourseID      string `json:"courseId"`
	Completed     bool   `json:"completed"`
	Score         int    `json:"score"`
	Passed        bool   `json:"passed"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// MockInterviewScore is one recorded mock interview result.
type MockInterviewScore struct {
	CompanyID string    `json:"companyId"`
	Score     int       `json:"score"`
	Date      time.Time `json:"date"`
}

// CareerProgress is the interview-practice state. The id lists are ordered
// sets.
type CareerProgress struct {
	PracticedQuestions  []string             `json:"practicedQuestions"`
	SavedQuestions      []string             `json:"savedQuestions"`
	MockInterviewScores []MockInterviewScore `json:"mockInterviewScores"`
}

func NewCareerProgress() CareerProgress {
	return CareerProgress{
		PracticedQuestions:  []string{},
		SavedQuestions:      []string{},
		MockInterviewScores: []MockInterviewScore{},
	}
}

// Normalize replaces nil slices so the record always encodes as arrays.
func (c *CareerProgress) Normalize() {
	if c.PracticedQuestions == nil {
		c.PracticedQuestions = []string{}
	}
	if c.SavedQuestions == nil {
		c.SavedQuestions = []string{}
	}
	if c.MockInterviewScores == nil {
		c.MockInterviewScores = []MockInterviewScore{}
	}
}

// Toggle adds id to the ordered set when absent and removes it otherwise.
// It reports whether id is a member afterwards.
func Toggle(set []string, id string) ([]string, bool) {
	for i, v := range set {
		if v == id {
			return append(set[:i:i], set[i+1:]...), false
		}
	}
	return append(set, id), true
}

// Contains reports membership in an ordered set.
func Contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
