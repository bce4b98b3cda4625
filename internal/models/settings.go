package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/common"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type GradientIntensity string

const (
	GradientLow    GradientIntensity = "low"
	GradientMedium GradientIntensity = "medium"
	GradientHigh   GradientIntensity = "high"
)

// Daily goal bounds, in minutes.
const (
	MinDailyGoal = 5
	MaxDailyGoal = 720
)

// UserSettings holds display and learning preferences plus the onboarding
// answers.
type UserSettings struct {
	Theme               Theme             `json:"theme"`
	GradientIntensity   GradientIntensity `json:"gradientIntensity"`
	DailyGoal           int               `json:"dailyGoal"`
	Reminders           bool              `json:"reminders"`
	AutoSave            bool              `json:"autoSave"`
	InstantFeedback     bool              `json:"instantFeedback"`
	ShowAnswers         bool              `json:"showAnswers"`
	RetryQuiz           bool              `json:"retryQuiz"`
	CertificateName     string            `json:"certificateName"`
	AvatarID            string            `json:"avatarId"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	HasSeenTour         bool              `json:"hasSeenTour"`
	PrimaryGoal         string            `json:"primaryGoal,omitempty"`
	ExperienceLevel     string            `json:"experienceLevel,omitempty"`
	Interests           []string          `json:"interests"`
	TargetRoles         []string          `json:"targetRoles"`
	Motivation          string            `json:"motivation,omitempty"`
	LearningStyle       string            `json:"learningStyle,omitempty"`
}

// DefaultSettings returns the settings of a freshly registered account.
func DefaultSettings(username string) UserSettings {
	return UserSettings{
		Theme:             ThemeDark,
		GradientIntensity: GradientMedium,
		DailyGoal:         30,
		Reminders:         true,
		AutoSave:          true,
		InstantFeedback:   true,
		ShowAnswers:       true,
		RetryQuiz:         true,
		CertificateName:   username,
		AvatarID:          "1",
		Interests:         []string{},
		TargetRoles:       []string{},
	}
}

func (s UserSettings) clone() UserSettings {
	s.Interests = append([]string{}, s.Interests...)
	s.TargetRoles = append([]string{}, s.TargetRoles...)
	return s
}

// SettingsUpdate is a partial update of UserSettings. Nil fields are left
// untouched by Apply.
type SettingsUpdate struct {
	Theme               *Theme
	GradientIntensity   *GradientIntensity
	DailyGoal           *int
	Reminders           *bool
	AutoSave            *bool
	InstantFeedback     *bool
	ShowAnswers         *bool
	RetryQuiz           *bool
	CertificateName     *string
	AvatarID            *string
	OnboardingCompleted *bool
	HasSeenTour         *bool
	PrimaryGoal         *string
	ExperienceLevel     *string
	Interests           []string
	TargetRoles         []string
	Motivation          *string
	LearningStyle       *string
}

// Validate checks enumerated and ranged fields.
func (u SettingsUpdate) Validate() error {
	if u.Theme != nil && *u.Theme != ThemeDark && *u.Theme != ThemeLight {
		return fmt.Errorf("%w: theme %q", common.ErrInvalidSetting, *u.Theme)
	}
	if u.GradientIntensity != nil {
		switch *u.GradientIntensity {
		case GradientLow, GradientMedium, GradientHigh:
		default:
			return fmt.Errorf("%w: gradientIntensity %q", common.ErrInvalidSetting, *u.GradientIntensity)
		}
	}
	if u.DailyGoal != nil && (*u.DailyGoal < MinDailyGoal || *u.DailyGoal > MaxDailyGoal) {
		return fmt.Errorf("%w: dailyGoal must be within %d..%d minutes", common.ErrInvalidSetting, MinDailyGoal, MaxDailyGoal)
	}
	return nil
}

// Apply returns s with every set field of u copied over.
func (u SettingsUpdate) Apply(s UserSettings) UserSettings {
	out := s.clone()
	setIf(&out.Theme, u.Theme)
	setIf(&out.GradientIntensity, u.GradientIntensity)
	setIf(&out.DailyGoal, u.DailyGoal)
	setIf(&out.Reminders, u.Reminders)
	setIf(&out.AutoSave, u.AutoSave)
	setIf(&out.InstantFeedback, u.InstantFeedback)
	setIf(&out.ShowAnswers, u.ShowAnswers)
	setIf(&out.RetryQuiz, u.RetryQuiz)
	setIf(&out.CertificateName, u.CertificateName)
	setIf(&out.AvatarID, u.AvatarID)
	setIf(&out.OnboardingCompleted, u.OnboardingCompleted)
	setIf(&out.HasSeenTour, u.HasSeenTour)
	setIf(&out.PrimaryGoal, u.PrimaryGoal)
	setIf(&out.ExperienceLevel, u.ExperienceLevel)
	setIf(&out.Motivation, u.Motivation)
	setIf(&out.LearningStyle, u.LearningStyle)
	if u.Interests != nil {
		out.Interests = append([]string{}, u.Interests...)
	}
	if u.TargetRoles != nil {
		out.TargetRoles = append([]string{}, u.TargetRoles...)
	}
	return out
}

// Merge returns u with every set field of o layered on top.
func (u SettingsUpdate) Merge(o SettingsUpdate) SettingsUpdate {
	override(&u.Theme, o.Theme)
	override(&u.GradientIntensity, o.GradientIntensity)
	override(&u.DailyGoal, o.DailyGoal)
	override(&u.Reminders, o.Reminders)
	override(&u.AutoSave, o.AutoSave)
	override(&u.InstantFeedback, o.InstantFeedback)
	override(&u.ShowAnswers, o.ShowAnswers)
	override(&u.RetryQuiz, o.RetryQuiz)
	override(&u.CertificateName, o.CertificateName)
	override(&u.AvatarID, o.AvatarID)
	override(&u.OnboardingCompleted, o.OnboardingCompleted)
	override(&u.HasSeenTour, o.HasSeenTour)
	override(&u.PrimaryGoal, o.PrimaryGoal)
	override(&u.ExperienceLevel, o.ExperienceLevel)
	override(&u.Motivation, o.Motivation)
	override(&u.LearningStyle, o.LearningStyle)
	if o.Interests != nil {
		u.Interests = o.Interests
	}
	if o.TargetRoles != nil {
		u.TargetRoles = o.TargetRoles
	}
	return u
}

func override[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v, for building updates inline.
func Ptr[T any](v T) *T { return &v }

// SettingFields lists the names accepted by ParseSettingsField.
var SettingFields = []string{
	"theme", "gradientIntensity", "dailyGoal", "reminders", "autoSave",
	"instantFeedback", "showAnswers", "retryQuiz", "certificateName",
	"avatarId", "primaryGoal", "experienceLevel", "interests",
	"targetRoles", "motivation", "learningStyle",
}

// ParseSettingsField builds a single-field update from its textual form.
// List fields take comma separated values; an empty value clears the list.
func ParseSettingsField(name, value string) (SettingsUpdate, error) {
	var u SettingsUpdate
	value = strings.TrimSpace(value)

	parseBool := func() (*bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false", common.ErrInvalidSetting, name)
		}
		return &b, nil
	}

	var err error
	switch name {
	case "theme":
		u.Theme = Ptr(Theme(strings.ToLower(value)))
	case "gradientIntensity":
		u.GradientIntensity = Ptr(GradientIntensity(strings.ToLower(value)))
	case "dailyGoal":
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return u, fmt.Errorf("%w: dailyGoal expects minutes", common.ErrInvalidSetting)
		}
		u.DailyGoal = &n
	case "reminders":
		u.Reminders, err = parseBool()
	case "autoSave":
		u.AutoSave, err = parseBool()
	case "instantFeedback":
		u.InstantFeedback, err = parseBool()
	case "showAnswers":
		u.ShowAnswers, err = parseBool()
	case "retryQuiz":
		u.RetryQuiz, err = parseBool()
	case "certificateName":
		u.CertificateName = &value
	case "avatarId":
		u.AvatarID = &value
	case "primaryGoal":
		u.PrimaryGoal = &value
	case "experienceLevel":
		u.ExperienceLevel = &value
	case "motivation":
		u.Motivation = &value
	case "learningStyle":
		u.LearningStyle = &value
	case "interests":
		u.Interests = splitList(value)
	case "targetRoles":
		u.TargetRoles = splitList(value)
	default:
		return u, fmt.Errorf("%w: unknown field %q", common.ErrInvalidSetting, name)
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func splitList(v string) []string {
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
