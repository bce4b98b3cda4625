package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/services"
)

// Career prints interview readiness across all companies.
func (a *App) Career(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	r, err := a.career.Readiness(ctx)
	if err != nil {
		return err
	}

	a.printf("Questions practiced: %d/%d (%d%%)\n", r.Practiced, r.Total, r.Percent)
	if r.MockInterviews > 0 {
		a.printf("Mock interviews: %d, average score %.0f%%\n", r.MockInterviews, r.AverageMockScore)
	} else {
		a.println("Mock interviews: none yet")
	}
	for _, c := range r.Companies {
		a.printf("  %-16s %2d/%-2d practiced %3d%%  %d saved\n", c.ID, c.Practiced, c.Total, c.Percent, c.Saved)
	}
	return nil
}

// Company prints a company profile and its questions, marking practiced
// (P) and saved (S) ones.
func (a *App) Company(ctx context.Context, id string) error {
	c, ok := a.catalog.Company(id)
	if !ok {
		return fmt.Errorf("company %q: %w", id, common.ErrNotFound)
	}
	cp, err := a.career.CareerProgress(ctx)
	if err != nil {
		return err
	}

	a.printf("%s · %s\n", c.Name, c.Difficulty)
	a.println(c.Description)
	a.printf("Roles: %s\n", strings.Join(c.Roles, ", "))
	a.printf("Focus: %s\n\n", strings.Join(c.Focus, ", "))
	for _, q := range c.Questions {
		mark := [2]byte{'.', '.'}
		if models.Contains(cp.PracticedQuestions, q.ID) {
			mark[0] = 'P'
		}
		if models.Contains(cp.SavedQuestions, q.ID) {
			mark[1] = 'S'
		}
		a.printf("  [%s] %-18s %-6s %s\n", mark[:], q.ID, q.Difficulty, q.Title)
	}
	return nil
}

func (a *App) question(id string) error {
	if _, _, ok := a.catalog.Question(id); !ok {
		return fmt.Errorf("question %q: %w", id, common.ErrNotFound)
	}
	return nil
}

// Practice toggles a question in the practiced set.
func (a *App) Practice(ctx context.Context, id string) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	if err := a.question(id); err != nil {
		return err
	}
	cp, err := a.career.ToggleQuestionPractice(ctx, id)
	if err != nil {
		return err
	}
	if models.Contains(cp.PracticedQuestions, id) {
		a.printf("Marked %s as practiced.\n", id)
	} else {
		a.printf("Unmarked %s.\n", id)
	}
	return nil
}

// Save toggles a question in the saved set.
func (a *App) Save(ctx context.Context, id string) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	if err := a.question(id); err != nil {
		return err
	}
	cp, err := a.career.ToggleQuestionSave(ctx, id)
	if err != nil {
		return err
	}
	if models.Contains(cp.SavedQuestions, id) {
		a.printf("Saved %s.\n", id)
	} else {
		a.printf("Removed %s from saved questions.\n", id)
	}
	return nil
}

// Mock draws a set of questions for a company and records a score. The
// score is taken from args when given, otherwise it is simulated.
func (a *App) Mock(ctx context.Context, companyID string, args []string) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	score := -1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > 100 {
			return usage("mock <company-id> [score 0-100]")
		}
		score = n
	}

	qs, err := a.career.DrawMockQuestions(companyID, services.MockQuestionCount)
	if err != nil {
		return err
	}
	if score < 0 {
		score = a.career.RandomMockScore()
	}

	a.printf("Mock interview: %d questions\n", len(qs))
	for i, q := range qs {
		a.printf("  %d. [%s] %s\n", i+1, q.Difficulty, q.Title)
	}
	if _, err := a.career.SaveMockInterviewScore(ctx, companyID, score); err != nil {
		return err
	}
	a.printf("Mock interview score: %d%%\n", score)
	return nil
}
