package services

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"github.com/dmitrijs2005/skillverse/internal/cryptox"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/repositories/session"
	"github.com/dmitrijs2005/skillverse/internal/repositories/users"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesAccountAndSession(t *testing.T) {
	e := newEnv(t)

	u, err := e.auth.Register(ctx(), "ana", "  Ana@X.com ", "pass1234")
	require.NoError(t, err)

	want := models.User{
		Username:     "ana",
		Email:        "ana@x.com",
		EnrolledDate: fixedNow,
		Settings:     models.DefaultSettings("ana"),
	}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("registered user mismatch (-want +got):\n%s", diff)
	}

	rec, ok, err := users.New(e.store).Get(ctx(), "ana@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sv_sec_4868fbd3", rec.Password)

	cur, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", cur.Email)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	_, err = e.auth.Register(ctx(), "impostor", "ANA@x.com", "other999")
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, MsgEmailTaken, UserMessage(OpRegister, err))

	db, err := users.New(e.store).All(ctx())
	require.NoError(t, err)
	require.Len(t, db, 1)
	assert.Equal(t, "ana", db["ana@x.com"].Username, "first record retained")

	cur, _, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	assert.Equal(t, "ana", cur.Username, "failed registration leaves session alone")
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)
	require.NoError(t, e.auth.Logout(ctx()))

	tests := []struct {
		name    string
		email   string
		pass    string
		wantErr error
		msg     string
	}{
		{"unknown email", "bob@x.com", "pass1234", common.ErrNotFound, MsgAccountNotFound},
		{"wrong password", "ana@x.com", "pass12345", common.ErrInvalidCredential, MsgIncorrectPassword},
		{"ok mixed case", "ANA@x.com", "pass1234", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := e.auth.Login(ctx(), tt.email, tt.pass)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.msg, UserMessage(OpLogin, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ana", u.Username)
		})
	}
}

func TestLogin_FailureDoesNotTouchSession(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	_, err = e.auth.Login(ctx(), "ana@x.com", "nope")
	require.Error(t, err)

	_, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestResetPassword_ThenLogin(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)
	require.NoError(t, e.auth.Logout(ctx()))

	msg, err := e.auth.ResetPassword(ctx(), "Ana@x.com", "newpass99")
	require.NoError(t, err)
	assert.Equal(t, MsgPasswordUpdated, msg)

	_, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	require.False(t, ok, "reset does not sign in")

	_, err = e.auth.Login(ctx(), "ana@x.com", "pass1234")
	require.ErrorIs(t, err, common.ErrInvalidCredential)

	_, err = e.auth.Login(ctx(), "ana@x.com", "newpass99")
	require.NoError(t, err)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.ResetPassword(ctx(), "ghost@x.com", "newpass99")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, MsgEmailNotFound, UserMessage(OpResetPassword, err))

	db, err := users.New(e.store).All(ctx())
	require.NoError(t, err)
	require.Empty(t, db)
}

func TestLogout_Idempotent(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.auth.Logout(ctx()))
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)
	require.NoError(t, e.auth.Logout(ctx()))
	require.NoError(t, e.auth.Logout(ctx()))

	_, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUpdateUser_PreservesDigest(t *testing.T) {
	e := newEnv(t)
	u, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	u.Username = "Ana L."
	u.Settings.Theme = models.ThemeLight
	require.NoError(t, e.auth.UpdateUser(ctx(), u))

	rec, _, err := users.New(e.store).Get(ctx(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana L.", rec.Username)
	assert.Equal(t, models.ThemeLight, rec.Settings.Theme)
	assert.Equal(t, "sv_sec_4868fbd3", rec.Password)

	sess, _, err := session.New(e.store).Get(ctx())
	require.NoError(t, err)
	assert.Equal(t, "Ana L.", sess.Username)

	require.NoError(t, e.auth.Logout(ctx()))
	_, err = e.auth.Login(ctx(), "ana@x.com", "pass1234")
	require.NoError(t, err, "profile edits never clear credentials")
}

func TestUpdateUser_UnknownEmailWritesSessionOnly(t *testing.T) {
	e := newEnv(t)

	ghost := models.User{Username: "ghost", Email: "ghost@x.com", Settings: models.DefaultSettings("ghost")}
	require.NoError(t, e.auth.UpdateUser(ctx(), ghost))

	cur, ok, err := e.auth.CurrentUser(ctx())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ghost", cur.Username)

	db, err := users.New(e.store).All(ctx())
	require.NoError(t, err)
	assert.Empty(t, db)
}

func TestUpdateSettings(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.UpdateSettings(ctx(), models.SettingsUpdate{Theme: models.Ptr(models.ThemeLight)})
	require.ErrorIs(t, err, common.ErrNoSession)

	_, err = e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	_, err = e.auth.UpdateSettings(ctx(), models.SettingsUpdate{DailyGoal: models.Ptr(-5)})
	require.ErrorIs(t, err, common.ErrInvalidSetting)

	u, err := e.auth.UpdateSettings(ctx(), models.SettingsUpdate{
		DailyGoal:       models.Ptr(60),
		CertificateName: models.Ptr("Ana Lima"),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, u.Settings.DailyGoal)
	assert.Equal(t, models.ThemeDark, u.Settings.Theme, "untouched fields keep their value")

	rec, _, err := users.New(e.store).Get(ctx(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", rec.Settings.CertificateName, "written through to directory")
	assert.NotEmpty(t, rec.Password)
}

func TestCompleteOnboardingAndTour(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	u, err := e.auth.CompleteOnboarding(ctx(), models.SettingsUpdate{
		PrimaryGoal: models.Ptr("job"),
		Interests:   []string{"dsa", "design"},
		Reminders:   models.Ptr(false),
	})
	require.NoError(t, err)
	assert.True(t, u.Settings.OnboardingCompleted)
	assert.False(t, u.Settings.HasSeenTour)
	assert.Equal(t, "job", u.Settings.PrimaryGoal)
	assert.Equal(t, []string{"dsa", "design"}, u.Settings.Interests)
	assert.False(t, u.Settings.Reminders)

	u, err = e.auth.MarkTourSeen(ctx())
	require.NoError(t, err)
	assert.True(t, u.Settings.HasSeenTour)
	assert.True(t, u.Settings.OnboardingCompleted)
}

func TestLogin_VerifiesTokensOfOtherSchemes(t *testing.T) {
	store := kv.NewMemory()

	old := newEnvWith(t, store, cryptox.SchemeLegacy)
	_, err := old.auth.Register(ctx(), "ana", "ana@x.com", "pass1234")
	require.NoError(t, err)

	current := newEnvWith(t, store, cryptox.SchemeArgon2id)
	_, err = current.auth.Login(ctx(), "ana@x.com", "pass1234")
	require.NoError(t, err)

	_, err = current.auth.ResetPassword(ctx(), "ana@x.com", "newpass99")
	require.NoError(t, err)
	rec, _, err := users.New(store).Get(ctx(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, cryptox.SchemeArgon2id, cryptox.SchemeOf(rec.Password))

	_, err = current.auth.Login(ctx(), "ana@x.com", "newpass99")
	require.NoError(t, err)
}

func TestCurrentUser_CorruptSession(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.store.Set(ctx(), session.Key, []byte("{")))

	_, _, err := e.auth.CurrentUser(ctx())
	require.ErrorIs(t, err, common.ErrCorruptRecord)
	assert.Equal(t, MsgStorageUnavailable, UserMessage(OpOther, err))
}

func TestAuth_PasswordLengthsPerScheme(t *testing.T) {
	passwords := map[string]string{
		"policy minimum":    "pass1234",
		"past bcrypt limit": strings.Repeat("a", 80) + "1",
	}
	for _, scheme := range []cryptox.Scheme{cryptox.SchemeArgon2id, cryptox.SchemeBcrypt, cryptox.SchemeLegacy} {
		for name, password := range passwords {
			t.Run(string(scheme)+"/"+name, func(t *testing.T) {
				require.NoError(t, ValidatePassword(password))
				e := newEnvWith(t, kv.NewMemory(), scheme)

				_, err := e.auth.Register(ctx(), "ana", "ana@x.com", password)
				require.NoError(t, err)
				require.NoError(t, e.auth.Logout(ctx()))

				_, err = e.auth.Login(ctx(), "ana@x.com", password)
				require.NoError(t, err)

				reset := password + "9"
				_, err = e.auth.ResetPassword(ctx(), "ana@x.com", reset)
				require.NoError(t, err)

				_, err = e.auth.Login(ctx(), "ana@x.com", password)
				require.ErrorIs(t, err, common.ErrInvalidCredential)
				_, err = e.auth.Login(ctx(), "ana@x.com", reset)
				require.NoError(t, err)
			})
		}
	}
}
