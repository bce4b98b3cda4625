package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/models"
)

func progressMark(p models.CourseProgress, ok bool) string {
	switch {
	case !ok:
		return ""
	case p.Passed:
		return fmt.Sprintf("passed %d%%", p.Score)
	default:
		return fmt.Sprintf("scored %d%%", p.Score)
	}
}

// Courses lists the catalog, optionally limited to one category, with the
// quiz result of every attempted course.
func (a *App) Courses(ctx context.Context, categoryID string) error {
	all, err := a.progress.AllProgress(ctx)
	if err != nil {
		return err
	}
	done := make(map[string]models.CourseProgress, len(all))
	for _, p := range all {
		done[p.CourseID] = p
	}

	found := false
	for _, cat := range a.catalog.Categories() {
		if categoryID != "" && cat.ID != categoryID {
			continue
		}
		found = true
		a.printf("%s (%s)\n", cat.Title, cat.ID)
		for _, c := range a.catalog.CoursesIn(cat.ID) {
			p, ok := done[c.ID]
			a.printf("  %-28s %-12s %-8s %s\n", c.ID, c.Level, c.Duration, progressMark(p, ok))
		}
	}
	if !found {
		return fmt.Errorf("category %q: %w", categoryID, common.ErrNotFound)
	}
	return nil
}

// Course prints a course with its resources and outline.
func (a *App) Course(ctx context.Context, id string) error {
	c, ok := a.catalog.Course(id)
	if !ok {
		return fmt.Errorf("course %q: %w", id, common.ErrNotFound)
	}
	p, done, err := a.progress.Progress(ctx, id)
	if err != nil {
		return err
	}

	a.printf("%s\n%s · %s · %d quiz questions\n\n", c.Title, c.Level, c.Duration, len(c.Quiz))
	a.println(c.Description)
	a.println()
	a.println("Resources:")
	for _, r := range c.Resources {
		a.printf("  %s: %s\n", r.Title, r.URL)
	}
	a.println()
	a.println(strings.TrimRight(c.Content, "\n"))
	if done {
		a.printf("\nYour result: %s on %s\n", progressMark(p, true), p.CompletedDate)
	}
	return nil
}

// Quiz runs the course quiz interactively and records the result. Feedback
// after each answer follows the instantFeedback and showAnswers settings.
func (a *App) Quiz(ctx context.Context, id string) error {
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	c, ok := a.catalog.Course(id)
	if !ok {
		return fmt.Errorf("course %q: %w", id, common.ErrNotFound)
	}

	answers := make([]int, len(c.Quiz))
	for i, q := range c.Quiz {
		a.printf("\nQuestion %d/%d: %s\n", i+1, len(c.Quiz), q.Question)
		for j, o := range q.Options {
			a.printf("  %d) %s\n", j+1, o)
		}

		answers[i] = -1
		for {
			line, err := GetSimpleText(a.reader, "Your answer (empty to skip)", a.out)
			if err != nil {
				return err
			}
			if line == "" {
				break
			}
			picked, err := ParseChoices(line, len(q.Options))
			if err == nil && len(picked) == 1 {
				answers[i] = picked[0]
				break
			}
			a.printf("choose a number between 1 and %d\n", len(q.Options))
		}

		if u.Settings.InstantFeedback {
			if answers[i] == q.CorrectAnswer {
				a.println("Correct!")
			} else {
				a.println("Incorrect.")
				if u.Settings.ShowAnswers {
					a.printf("Correct answer: %s\n", q.Options[q.CorrectAnswer])
				}
			}
		}
	}

	res, err := a.progress.SubmitQuiz(ctx, id, answers)
	if err != nil {
		return err
	}

	a.printf("\nScore: %d%% (%d/%d)\n", res.Progress.Score, res.Correct, res.Total)
	if res.Progress.Passed {
		a.printf("Passed! Type 'certificate %s' to view your certificate.\n", id)
		return nil
	}
	a.printf("Not passed. You need %d%% to pass.\n", models.PassingScore)
	if u.Settings.RetryQuiz {
		a.printf("Type 'quiz %s' to try again.\n", id)
	}
	return nil
}

// Progress lists every recorded quiz result.
func (a *App) Progress(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	all, err := a.progress.AllProgress(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		a.println("No progress yet. Type 'courses' to pick one.")
		return nil
	}
	for _, p := range all {
		title := p.CourseID
		if c, ok := a.catalog.Course(p.CourseID); ok {
			title = c.Title
		}
		a.printf("  %-28s %-14s %s\n", title, progressMark(p, true), p.CompletedDate)
	}
	return nil
}

// Stats prints the dashboard summary.
func (a *App) Stats(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	st, err := a.progress.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Courses passed: %d/%d (%d%%), attempted: %d\n", st.Passed, st.Total, st.Percent, st.Completed)
	for _, c := range st.Categories {
		a.printf("  %-28s %2d/%-2d %3d%%\n", c.Title, c.Passed, c.Total, c.Percent)
	}
	return nil
}

// Certificate prints the certificate of a passed course.
func (a *App) Certificate(ctx context.Context, courseID string) error {
	c, err := a.progress.Certificate(ctx, courseID)
	if err != nil {
		return err
	}
	rule := strings.Repeat("=", 48)
	a.println(rule)
	a.println("           CERTIFICATE OF COMPLETION")
	a.println()
	a.println("  This certifies that")
	a.printf("      %s\n", c.Name)
	a.println("  has successfully completed")
	a.printf("      %s\n", c.CourseTitle)
	a.printf("  with a score of %d%% on %s\n", c.Score, c.CompletedDate)
	a.println(rule)
	return nil
}

func (a *App) Certificates(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}
	certs, err := a.progress.Certificates(ctx)
	if err != nil {
		return err
	}
	if len(certs) == 0 {
		a.println("No certificates yet. Pass a quiz to earn one.")
		return nil
	}
	for _, c := range certs {
		a.printf("  %-28s %3d%%  %s\n", c.CourseTitle, c.Score, c.CompletedDate)
	}
	return nil
}

// ResetProgress deletes quiz and career progress after confirmation.
func (a *App) ResetProgress(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete all quiz and interview progress?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.progress.ResetProgress(ctx); err != nil {
		return err
	}
	a.println("Progress reset.")
	return nil
}

// ClearData wipes the whole store. Without force the user is asked first.
func (a *App) ClearData(ctx context.Context, force bool) error {
	if !force {
		ok, err := Confirm(a.reader, "Delete every account and record on this device?", a.out)
		if err != nil || !ok {
			return err
		}
	}
	if err := a.device.ClearData(ctx); err != nil {
		return err
	}
	a.println("All local data cleared.")
	return nil
}
