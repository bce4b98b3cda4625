package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/catalog"
	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/repositories/career"
)

// Mock interview defaults.
const (
	MockQuestionCount = 5
	MockScoreMin      = 60
	MockScoreMax      = 100
)

// CareerService owns the interview-practice record.
type CareerService struct {
	store   kv.Store
	catalog *catalog.Catalog
	log     logging.Logger
	now     func() time.Time
	rng     *rand.Rand
}

func NewCareerService(store kv.Store, cat *catalog.Catalog, log logging.Logger) *CareerService {
	if log == nil {
		log = logging.Nop()
	}
	return &CareerService{
		store:   store,
		catalog: cat,
		log:     log,
		now:     time.Now,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// CareerProgress returns the stored record or an empty one.
func (s *CareerService) CareerProgress(ctx context.Context) (models.CareerProgress, error) {
	return career.New(s.store).Get(ctx)
}

func (s *CareerService) update(ctx context.Context, fn func(c *models.CareerProgress)) (models.CareerProgress, error) {
	repo := career.New(s.store)
	c, err := repo.Get(ctx)
	if err != nil {
		return models.CareerProgress{}, err
	}
	fn(&c)
	if err := repo.Save(ctx, c); err != nil {
		return models.CareerProgress{}, err
	}
	return c, nil
}

// ToggleQuestionPractice flips the membership of id in the practiced set.
func (s *CareerService) ToggleQuestionPractice(ctx context.Context, id string) (models.CareerProgress, error) {
	return s.update(ctx, func(c *models.CareerProgress) {
		c.PracticedQuestions, _ = models.Toggle(c.PracticedQuestions, id)
	})
}

// ToggleQuestionSave flips the membership of id in the saved set.
func (s *CareerService) ToggleQuestionSave(ctx context.Context, id string) (models.CareerProgress, error) {
	return s.update(ctx, func(c *models.CareerProgress) {
		c.SavedQuestions, _ = models.Toggle(c.SavedQuestions, id)
	})
}

// SaveMockInterviewScore appends a scored attempt stamped with the current
// time. History is unbounded.
func (s *CareerService) SaveMockInterviewScore(ctx context.Context, companyID string, score int) (models.CareerProgress, error) {
	c, err := s.update(ctx, func(c *models.CareerProgress) {
		c.MockInterviewScores = append(c.MockInterviewScores, models.MockInterviewScore{
			CompanyID: companyID,
			Score:     score,
			Date:      s.now().UTC(),
		})
	})
	if err == nil {
		s.log.Info(ctx, "mock interview recorded", "company", companyID, "score", score)
	}
	return c, err
}

// CompanyReadiness is practice coverage for one company.
type CompanyReadiness struct {
	ID        string
	Name      string
	Practiced int
	Saved     int
	Total     int
	Percent   int
}

// Readiness summarizes practice coverage across the catalog.
type Readiness struct {
	Companies        []CompanyReadiness
	Practiced        int
	Total            int
	Percent          int
	MockInterviews   int
	AverageMockScore float64
}

func (s *CareerService) Readiness(ctx context.Context) (Readiness, error) {
	c, err := s.CareerProgress(ctx)
	if err != nil {
		return Readiness{}, err
	}

	var r Readiness
	for _, company := range s.catalog.Companies() {
		cr := CompanyReadiness{ID: company.ID, Name: company.Name, Total: len(company.Questions)}
		for _, q := range company.Questions {
			if models.Contains(c.PracticedQuestions, q.ID) {
				cr.Practiced++
			}
			if models.Contains(c.SavedQuestions, q.ID) {
				cr.Saved++
			}
		}
		cr.Percent = percent(cr.Practiced, cr.Total)
		r.Practiced += cr.Practiced
		r.Total += cr.Total
		r.Companies = append(r.Companies, cr)
	}
	r.Percent = percent(r.Practiced, r.Total)

	r.MockInterviews = len(c.MockInterviewScores)
	if r.MockInterviews > 0 {
		sum := 0
		for _, m := range c.MockInterviewScores {
			sum += m.Score
		}
		r.AverageMockScore = float64(sum) / float64(r.MockInterviews)
	}
	return r, nil
}

// DrawMockQuestions picks up to n distinct random questions of a company.
// A negative n draws none.
func (s *CareerService) DrawMockQuestions(companyID string, n int) ([]models.InterviewQuestion, error) {
	company, ok := s.catalog.Company(companyID)
	if !ok {
		return nil, fmt.Errorf("company %q: %w", companyID, common.ErrNotFound)
	}
	qs := append([]models.InterviewQuestion(nil), company.Questions...)
	s.rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	n = max(n, 0)
	if n < len(qs) {
		qs = qs[:n]
	}
	return qs, nil
}

// RandomMockScore returns a simulated score in [MockScoreMin, MockScoreMax].
func (s *CareerService) RandomMockScore() int {
	return MockScoreMin + s.rng.IntN(MockScoreMax-MockScoreMin+1)
}
