package services

import (
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProgress_Upsert(t *testing.T) {
	e := newEnv(t)

	p := models.CourseProgress{CourseID: "x", Completed: true, Score: 70, Passed: true, CompletedDate: "2025-01-01"}
	require.NoError(t, e.progress.SaveProgress(ctx(), p))

	got, ok, err := e.progress.Progress(ctx(), "x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, p, got)

	p2 := models.CourseProgress{CourseID: "x", Completed: true, Score: 40}
	require.NoError(t, e.progress.SaveProgress(ctx(), p2))

	all, err := e.progress.AllProgress(ctx())
	require.NoError(t, err)
	require.Equal(t, []models.CourseProgress{p2}, all, "exactly one record per course id")
}

func TestResetProgress_ClearsProgressAndCareer(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "go", Score: 90, Passed: true}))
	_, err = e.career.ToggleQuestionPractice(ctx(), "google-q1")
	require.NoError(t, err)
	_, err = e.career.SaveMockInterviewScore(ctx(), "google", 77)
	require.NoError(t, err)

	require.NoError(t, e.progress.ResetProgress(ctx()))

	all, err := e.progress.AllProgress(ctx())
	require.NoError(t, err)
	assert.Empty(t, all)

	c, err := e.career.CareerProgress(ctx())
	require.NoError(t, err)
	assert.Equal(t, models.NewCareerProgress(), c)

	_, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	assert.True(t, ok, "accounts survive a progress reset")
}

// answersWithCorrect answers the first n questions correctly and the rest
// wrongly.
func answersWithCorrect(course models.Course, n int) []int {
	out := make([]int, len(course.Quiz))
	for i, q := range course.Quiz {
		if i < n {
			out[i] = q.CorrectAnswer
		} else {
			out[i] = (q.CorrectAnswer + 1) % len(q.Options)
		}
	}
	return out
}

func TestSubmitQuiz_Scoring(t *testing.T) {
	e := newEnv(t)
	course, ok := e.progress.catalog.Course("python")
	require.True(t, ok)
	require.Len(t, course.Quiz, 12)

	tests := []struct {
		name    string
		answers []int
		score   int
		passed  bool
	}{
		{"all correct", answersWithCorrect(course, 12), 100, true},
		{"nine of twelve", answersWithCorrect(course, 9), 75, true},
		{"eight of twelve", answersWithCorrect(course, 8), 67, false},
		{"none", answersWithCorrect(course, 0), 0, false},
		{"short answer list", answersWithCorrect(course, 12)[:6], 50, false},
		{"unanswered", []int{-1, -1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.progress.SubmitQuiz(ctx(), "python", tt.answers)
			require.NoError(t, err)
			assert.Equal(t, 12, res.Total)
			assert.Equal(t, tt.score, res.Progress.Score)
			assert.Equal(t, tt.passed, res.Progress.Passed)
			assert.True(t, res.Progress.Completed)
			assert.Equal(t, "2025-03-14", res.Progress.CompletedDate)

			stored, ok, err := e.progress.Progress(ctx(), "python")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, res.Progress, stored)
		})
	}

	_, err := e.progress.SubmitQuiz(ctx(), "cobol", nil)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStats(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "go", Completed: true, Score: 90, Passed: true}))
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "rust", Completed: true, Score: 50}))
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "trees", Completed: true, Score: 80, Passed: true}))
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "retired-course", Passed: true}))

	st, err := e.progress.Stats(ctx())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Passed, "unknown course ids are ignored")
	assert.Equal(t, 3, st.Completed)
	assert.Equal(t, 30, st.Total)
	assert.Equal(t, 7, st.Percent)

	require.Len(t, st.Categories, 3)
	assert.Equal(t, CategoryStats{ID: "programming", Title: "Programming Languages", Passed: 1, Total: 10, Percent: 10}, st.Categories[0])
	assert.Equal(t, 1, st.Categories[1].Passed)
	assert.Equal(t, 0, st.Categories[2].Passed)
}

func TestCertificate_Eligibility(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "go", Completed: true, Score: 88, Passed: true, CompletedDate: "2025-03-01"}))
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "rust", Completed: true, Score: 40}))

	_, err := e.progress.Certificate(ctx(), "go")
	require.ErrorIs(t, err, common.ErrCertificateUnavailable, "needs a signed-in user")

	_, err = e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)
	_, err = e.auth.UpdateSettings(ctx(), models.SettingsUpdate{CertificateName: models.Ptr("Ana Lima")})
	require.NoError(t, err)

	cert, err := e.progress.Certificate(ctx(), "go")
	require.NoError(t, err)
	assert.Equal(t, Certificate{Name: "Ana Lima", CourseID: "go", CourseTitle: "Go", Score: 88, CompletedDate: "2025-03-01"}, cert)

	_, err = e.progress.Certificate(ctx(), "rust")
	require.ErrorIs(t, err, common.ErrCertificateUnavailable, "not passed")
	_, err = e.progress.Certificate(ctx(), "python")
	require.ErrorIs(t, err, common.ErrCertificateUnavailable, "no progress")
	_, err = e.progress.Certificate(ctx(), "cobol")
	require.ErrorIs(t, err, common.ErrCertificateUnavailable, "unknown course")

	certs, err := e.progress.Certificates(ctx())
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "go", certs[0].CourseID)
}

func TestCertificate_NameFallsBackToUsername(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)
	_, err = e.auth.UpdateSettings(ctx(), models.SettingsUpdate{CertificateName: models.Ptr("")})
	require.NoError(t, err)
	require.NoError(t, e.progress.SaveProgress(ctx(), models.CourseProgress{CourseID: "go", Score: 70, Passed: true}))

	cert, err := e.progress.Certificate(ctx(), "go")
	require.NoError(t, err)
	assert.Equal(t, "ana", cert.Name)
}

func TestCertificates_NoSession(t *testing.T) {
	e := newEnv(t)
	certs, err := e.progress.Certificates(ctx())
	require.NoError(t, err)
	assert.Empty(t, certs)
}
