package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/services"
)

// currentUser returns the signed-in user or common.ErrNoSession.
func (a *App) currentUser(ctx context.Context) (models.User, error) {
	u, ok, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrNoSession
	}
	return u, nil
}

func (a *App) password(prompt string) (string, error) {
	pw, err := GetPassword(a.reader, prompt, a.out, a.terminal)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for a name, an email and a password, creates the
// account and signs it in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return userError("Name is required.")
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := services.ValidateEmail(email); err != nil {
		return err
	}

	password, err := a.password("Enter password")
	if err != nil {
		return err
	}
	if err := services.ValidatePassword(password); err != nil {
		return err
	}

	u, err := a.auth.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	a.printf("Welcome to SkillVerse, %s!\n", u.Username)
	a.println("Type 'onboarding' to personalise your learning path.")
	return nil
}

// Login prompts for credentials and replaces the session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.password("Enter password")
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.printf("Welcome back, %s!\n", u.Username)
	if !u.Settings.HasSeenTour {
		return a.tour(ctx)
	}
	return nil
}

// tour prints the first-login walkthrough and records that it was seen.
func (a *App) tour(ctx context.Context) error {
	a.println("Quick tour:")
	a.println("  courses      browse Programming, DSA and Design courses")
	a.println("  quiz <id>    score 70% or more to earn a certificate")
	a.println("  career       track interview practice per company")
	a.println("  settings     adjust your learning preferences")
	_, err := a.auth.MarkTourSeen(ctx)
	return err
}

// ResetPassword sets a new password for email, prompting for the email
// when it is empty. The user has to log in afterwards.
func (a *App) ResetPassword(ctx context.Context, email string) error {
	if email == "" {
		var err error
		if email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
			return err
		}
	}
	if err := services.ValidateEmail(email); err != nil {
		return err
	}

	password, err := a.password("Enter new password")
	if err != nil {
		return err
	}
	confirm, err := a.password("Confirm new password")
	if err != nil {
		return err
	}
	if err := services.ValidatePasswordReset(password, confirm); err != nil {
		return err
	}

	msg, err := a.auth.ResetPassword(ctx, email, password)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	a.printf("%s <%s>\n", u.Username, u.Email)
	a.printf("Enrolled: %s\n", u.EnrolledDate.Format(models.DateLayout))
	if !u.Settings.OnboardingCompleted {
		a.println("Onboarding: not completed (type 'onboarding')")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Settings prints the settings of the signed-in user.
func (a *App) Settings(ctx context.Context) error {
	u, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	s := u.Settings
	rows := [][2]string{
		{"theme", string(s.Theme)},
		{"gradientIntensity", string(s.GradientIntensity)},
		{"dailyGoal", fmt.Sprintf("%d min", s.DailyGoal)},
		{"reminders", yesNo(s.Reminders)},
		{"autoSave", yesNo(s.AutoSave)},
		{"instantFeedback", yesNo(s.InstantFeedback)},
		{"showAnswers", yesNo(s.ShowAnswers)},
		{"retryQuiz", yesNo(s.RetryQuiz)},
		{"certificateName", s.CertificateName},
		{"avatarId", s.AvatarID},
		{"primaryGoal", s.PrimaryGoal},
		{"experienceLevel", s.ExperienceLevel},
		{"interests", strings.Join(s.Interests, ", ")},
		{"targetRoles", strings.Join(s.TargetRoles, ", ")},
		{"motivation", s.Motivation},
		{"learningStyle", s.LearningStyle},
	}
	for _, r := range rows {
		a.printf("  %-18s %s\n", r[0], r[1])
	}
	return nil
}

// Set changes one setting of the signed-in user.
func (a *App) Set(ctx context.Context, field, value string) error {
	upd, err := models.ParseSettingsField(field, value)
	if err != nil {
		return err
	}
	if _, err := a.auth.UpdateSettings(ctx, upd); err != nil {
		return err
	}
	a.println("Saved.")
	return nil
}

// Onboarding walks through the onboarding questionnaire and stores the
// answers in one settings update.
func (a *App) Onboarding(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}

	questions := a.catalog.Onboarding()
	var answers models.SettingsUpdate
	for i, q := range questions {
		a.printf("Step %d/%d: %s\n", i+1, len(questions), q.Question)
		for j, o := range q.Options {
			a.printf("  %d) %s\n", j+1, o.Label)
		}

		hint := "Choose one"
		if q.Type == "multi" {
			hint = "Choose one or more, separated by commas"
		}
		picked, err := a.choose(hint, len(q.Options), q.Type == "multi")
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(picked))
		for _, p := range picked {
			ids = append(ids, q.Options[p].ID)
		}
		upd, err := models.ParseSettingsField(q.ID, strings.Join(ids, ","))
		if err != nil {
			return err
		}
		answers = answers.Merge(upd)
	}

	u, err := a.auth.CompleteOnboarding(ctx, answers)
	if err != nil {
		return err
	}
	a.printf("You're all set, %s! Daily goal: %d min.\n", u.Username, u.Settings.DailyGoal)
	return nil
}

// choose prompts until the user picks a valid option. Single choice
// accepts exactly one number.
func (a *App) choose(prompt string, n int, multi bool) ([]int, error) {
	for {
		line, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return nil, err
		}
		picked, err := ParseChoices(line, n)
		switch {
		case err != nil:
			a.println(err.Error())
		case len(picked) == 0:
			a.println("Please choose an option.")
		case !multi && len(picked) > 1:
			a.println("Please choose a single option.")
		default:
			return picked, nil
		}
	}
}
