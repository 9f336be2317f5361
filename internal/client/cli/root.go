package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	u := a.currentUser()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

// Root runs the interactive command loop. It blocks until the user exits or
// stdin closes.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the portfolio CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	canEnter(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	List(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Upload(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	SetProfile(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Commands that mutate the gallery are gated behind the
// route-guard check, mirroring the protected admin views; the listing
// commands are public.
//
// The loop exits on scanner EOF or when the user types "exit" or "quit".
// Errors from command handlers are ignored here; handlers log their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pf %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, more, refresh, upload, delete <id>, edit <id>, profile, setprofile <field>, status, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, more, refresh, profile, login, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "upload":
			if !a.canEnter(ctx) {
				printlnFn("Please login first")
				continue
			}
			_ = a.Upload(ctx)

		case "delete":
			if !a.canEnter(ctx) {
				printlnFn("Please login first")
				continue
			}
			_ = a.Delete(ctx, args)

		case "edit":
			if !a.canEnter(ctx) {
				printlnFn("Please login first")
				continue
			}
			_ = a.Edit(ctx, args)

		case "setprofile":
			if !a.canEnter(ctx) {
				printlnFn("Please login first")
				continue
			}
			_ = a.SetProfile(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}

func (a *App) canEnter(ctx context.Context) bool {
	return a.guard.CanEnter(ctx)
}
