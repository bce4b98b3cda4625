package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/catalog"
	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/repositories/career"
	"github.com/dmitrijs2005/skillverse/internal/repositories/progress"
	"github.com/dmitrijs2005/skillverse/internal/repositories/session"
)

// ProgressService owns the course progress table. Progress is kept per
// device, not per account.
type ProgressService struct {
	store   kv.Store
	catalog *catalog.Catalog
	log     logging.Logger
	now     func() time.Time
}

func NewProgressService(store kv.Store, cat *catalog.Catalog, log logging.Logger) *ProgressService {
	if log == nil {
		log = logging.Nop()
	}
	return &ProgressService{store: store, catalog: cat, log: log, now: time.Now}
}

// SaveProgress upserts p by course id.
func (s *ProgressService) SaveProgress(ctx context.Context, p models.CourseProgress) error {
	return progress.New(s.store).Upsert(ctx, p)
}

func (s *ProgressService) AllProgress(ctx context.Context) ([]models.CourseProgress, error) {
	return progress.New(s.store).All(ctx)
}

func (s *ProgressService) Progress(ctx context.Context, courseID string) (models.CourseProgress, bool, error) {
	return progress.New(s.store).Get(ctx, courseID)
}

// ResetProgress removes the progress table together with the career record.
func (s *ProgressService) ResetProgress(ctx context.Context) error {
	err := s.store.Atomic(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := progress.New(r).Delete(ctx); err != nil {
			return err
		}
		return career.New(r).Delete(ctx)
	})
	if err == nil {
		s.log.Info(ctx, "progress reset")
	}
	return err
}

// QuizResult is the outcome of one quiz submission.
type QuizResult struct {
	Progress models.CourseProgress
	Correct  int
	Total    int
}

// SubmitQuiz grades answers (option indexes, -1 for unanswered) against the
// course quiz and saves the result. Missing answers count as wrong.
func (s *ProgressService) SubmitQuiz(ctx context.Context, courseID string, answers []int) (QuizResult, error) {
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return QuizResult{}, fmt.Errorf("course %q: %w", courseID, common.ErrNotFound)
	}

	res := QuizResult{Total: len(course.Quiz)}
	for i, q := range course.Quiz {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			res.Correct++
		}
	}

	score := 0
	if res.Total > 0 {
		score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	}

	res.Progress = models.CourseProgress{
		CourseID:      courseID,
		Completed:     true,
		Score:         score,
		Passed:        score >= models.PassingScore,
		CompletedDate: s.now().Format(models.DateLayout),
	}

	if err := s.SaveProgress(ctx, res.Progress); err != nil {
		return QuizResult{}, err
	}

	s.log.Info(ctx, "quiz submitted", "course", courseID, "score", score, "passed", res.Progress.Passed)
	return res, nil
}

// CategoryStats counts passed courses within one category.
type CategoryStats struct {
	ID      string
	Title   string
	Passed  int
	Total   int
	Percent int
}

// Stats is the dashboard summary.
type Stats struct {
	Passed     int
	Completed  int
	Total      int
	Percent    int
	Categories []CategoryStats
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

func (s *ProgressService) Stats(ctx context.Context) (Stats, error) {
	all, err := s.AllProgress(ctx)
	if err != nil {
		return Stats{}, err
	}
	byCourse := make(map[string]models.CourseProgress, len(all))
	for _, p := range all {
		byCourse[p.CourseID] = p
	}

	var st Stats
	for _, cat := range s.catalog.Categories() {
		cs := CategoryStats{ID: cat.ID, Title: cat.Title}
		for _, course := range s.catalog.CoursesIn(cat.ID) {
			cs.Total++
			p, ok := byCourse[course.ID]
			if !ok {
				continue
			}
			if p.Completed {
				st.Completed++
			}
			if p.Passed {
				cs.Passed++
			}
		}
		cs.Percent = percent(cs.Passed, cs.Total)
		st.Passed += cs.Passed
		st.Total += cs.Total
		st.Categories = append(st.Categories, cs)
	}
	st.Percent = percent(st.Passed, st.Total)
	return st, nil
}

// Certificate is issued for a passed course.
type Certificate struct {
	Name          string
	CourseID      string
	CourseTitle   string
	Score         int
	CompletedDate string
}

// Certificate returns common.ErrCertificateUnavailable unless a user is
// signed in, the course exists and its progress is passed.
func (s *ProgressService) Certificate(ctx context.Context, courseID string) (Certificate, error) {
	rec, ok, err := session.New(s.store).Get(ctx)
	if err != nil {
		return Certificate{}, err
	}
	if !ok {
		return Certificate{}, fmt.Errorf("certificate %s: %w", courseID, common.ErrCertificateUnavailable)
	}
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return Certificate{}, fmt.Errorf("certificate %s: %w", courseID, common.ErrCertificateUnavailable)
	}
	p, ok, err := s.Progress(ctx, courseID)
	if err != nil {
		return Certificate{}, err
	}
	if !ok || !p.Passed {
		return Certificate{}, fmt.Errorf("certificate %s: %w", courseID, common.ErrCertificateUnavailable)
	}

	return Certificate{
		Name:          rec.Public().CertificateName(),
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		Score:         p.Score,
		CompletedDate: p.CompletedDate,
	}, nil
}

// Certificates lists every earned certificate in progress order. It is
// empty when nobody is signed in.
func (s *ProgressService) Certificates(ctx context.Context) ([]Certificate, error) {
	rec, ok, err := session.New(s.store).Get(ctx)
	if err != nil || !ok {
		return nil, err
	}
	all, err := s.AllProgress(ctx)
	if err != nil {
		return nil, err
	}

	name := rec.Public().CertificateName()
	var out []Certificate
	for _, p := range all {
		if !p.Passed {
			continue
		}
		course, ok := s.catalog.Course(p.CourseID)
		if !ok {
			continue
		}
		out = append(out, Certificate{
			Name:          name,
			CourseID:      course.ID,
			CourseTitle:   course.Title,
			Score:         p.Score,
			CompletedDate: p.CompletedDate,
		})
	}
	return out, nil
}
