package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/models"
	"github.com/dmitrijs2005/skillverse/internal/services"
)

// execIface is the command surface the REPL drives. App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	status(ctx context.Context) string
	exec(ctx context.Context, cmd string, args []string) error
}

var errQuit = errors.New("quit")

// userError is shown to the user verbatim.
type userError string

func (e userError) Error() string { return string(e) }

func usage(format string, args ...any) error {
	return userError("Usage: " + fmt.Sprintf(format, args...))
}

// commandError carries the message shown for a failed command while keeping
// the underlying error reachable through errors.Is.
type commandError struct {
	msg string
	err error
}

func (e *commandError) Error() string { return e.msg }
func (e *commandError) Unwrap() error { return e.err }

// opFor selects the wording of not-found errors per command.
func opFor(cmd string) services.Op {
	switch cmd {
	case "register":
		return services.OpRegister
	case "login":
		return services.OpLogin
	case "reset-password":
		return services.OpResetPassword
	}
	return services.OpOther
}

// describe returns the user facing message for an error returned by cmd.
func describe(cmd string, err error) string {
	var ue userError
	if errors.As(err, &ue) {
		return string(ue)
	}
	var ce *commandError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return services.UserMessage(opFor(cmd), err)
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The prompt shows the signed-in user, if any. The first token of a line is
// the command; the remaining tokens are its arguments. Errors are reported
// with their user facing message and do not stop the loop.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "sv%s> ", a.status(ctx))
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		err = a.exec(ctx, cmd, parts[1:])
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			fmt.Fprintln(w, "Bye!")
			return
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return
		default:
			fmt.Fprintln(w, describe(cmd, err))
		}
	}
}

func (a *App) status(ctx context.Context) string {
	u, ok, err := a.auth.CurrentUser(ctx)
	if err != nil || !ok {
		return ""
	}
	return fmt.Sprintf(" (%s)", u.Username)
}

const (
	helpGuest = `Available commands:
  register                 create an account
  login                    sign in
  reset-password [email]   set a new password
  courses [category]       list courses
  course <id>              show a course outline
  company <id>             show a company and its interview questions
  clear-data               delete every account and record on this device
  help                     show this list
  exit | quit              leave the program`

	helpUser = `Available commands:
  whoami                   show the signed-in account
  courses [category]       list courses
  course <id>              show a course outline
  quiz <id>                take a course quiz
  progress                 list quiz results
  stats                    dashboard summary
  certificate <id>         show a certificate
  certificates             list earned certificates
  career                   interview readiness
  company <id>             show a company and its interview questions
  practice <question-id>   toggle a question as practiced
  save <question-id>       toggle a question as saved
  mock <company-id> [score] run a mock interview
  settings                 show settings
  set <field> <value>      change a setting
  onboarding               answer the onboarding questions
  reset-progress           delete quiz and career progress
  clear-data               delete every account and record on this device
  logout                   sign out
  help                     show this list
  exit | quit              leave the program`
)

// exec dispatches one REPL command.
func (a *App) exec(ctx context.Context, cmd string, args []string) error {
	err := a.dispatch(ctx, cmd, args)
	if err != nil && !errors.Is(err, errQuit) && describe(cmd, err) == services.MsgStorageUnavailable {
		a.log.Error(ctx, "command failed", "command", cmd, "error", err)
	}
	return err
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.status(ctx) != "" {
			a.println(helpUser)
		} else {
			a.println(helpGuest)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "reset-password":
		email := ""
		if len(args) > 0 {
			email = args[0]
		}
		return a.ResetPassword(ctx, email)

	case "courses":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		return a.Courses(ctx, category)
	case "course":
		if len(args) != 1 {
			return usage("course <id>")
		}
		return a.Course(ctx, args[0])
	case "quiz":
		if len(args) != 1 {
			return usage("quiz <id>")
		}
		return a.Quiz(ctx, args[0])
	case "progress":
		return a.Progress(ctx)
	case "stats":
		return a.Stats(ctx)
	case "certificate":
		if len(args) != 1 {
			return usage("certificate <course-id>")
		}
		return a.Certificate(ctx, args[0])
	case "certificates":
		return a.Certificates(ctx)

	case "career":
		return a.Career(ctx)
	case "company":
		if len(args) != 1 {
			return usage("company <id>")
		}
		return a.Company(ctx, args[0])
	case "practice":
		if len(args) != 1 {
			return usage("practice <question-id>")
		}
		return a.Practice(ctx, args[0])
	case "save":
		if len(args) != 1 {
			return usage("save <question-id>")
		}
		return a.Save(ctx, args[0])
	case "mock":
		if len(args) < 1 || len(args) > 2 {
			return usage("mock <company-id> [score]")
		}
		return a.Mock(ctx, args[0], args[1:])

	case "settings":
		return a.Settings(ctx)
	case "set":
		if len(args) < 1 {
			return usage("set <field> <value>; fields: %s", strings.Join(models.SettingFields, ", "))
		}
		return a.Set(ctx, args[0], strings.Join(args[1:], " "))
	case "onboarding":
		return a.Onboarding(ctx)

	case "reset-progress":
		return a.ResetProgress(ctx)
	case "clear-data":
		return a.ClearData(ctx, false)

	case "exit", "quit":
		return errQuit

	default:
		return userError(fmt.Sprintf("Unknown command: %s (type 'help' for commands)", cmd))
	}
}
