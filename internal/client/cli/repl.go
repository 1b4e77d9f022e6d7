package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() router.Screen
	Navigate(ctx context.Context, path string) error
	SetUsername(v string) error
	SetPassword(args []string) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Add() error
	Edit(id string) error
	Set(field, value string) error
	Save(ctx context.Context) error
	Close() error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the user console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current path (from statusFn) and accepts commands:
//
//	Everywhere:
//	  - help                 show available commands
//	  - go <path>            open /login, /user-management, ...
//	  - show                 redraw the current screen
//	  - exit | quit          leave the program
//
//	Login screen:
//	  - user <name>          set the username
//	  - pass [password]      set the password (prompted without echo if omitted)
//	  - login                submit the form
//
//	User management:
//	  - list | refresh       reload the collection
//	  - add                  open the modal for a new user
//	  - edit <id>            open the modal for an existing user
//	  - set <field> [value]  change a field of the open modal
//	  - save                 create or update, then reload
//	  - close                discard the modal
//	  - delete <id>          delete a user, then reload
//
// Errors returned by handlers are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText(a.screen()))

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			err = a.Navigate(ctx, args[0])

		case "show":
			err = a.Show(ctx)

		case "user":
			if len(args) != 1 {
				printlnFn("Usage: user <name>")
				continue
			}
			err = a.SetUsername(args[0])

		case "pass":
			err = a.SetPassword(args)

		case "login":
			err = a.Login(ctx)

		case "list", "refresh":
			err = a.List(ctx)

		case "add":
			err = a.Add()

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			err = a.Edit(args[0])

		case "set":
			if len(args) == 0 {
				printlnFn("Usage: set <field> [value]")
				continue
			}
			err = a.Set(args[0], strings.Join(args[1:], " "))

		case "save":
			err = a.Save(ctx)

		case "close":
			err = a.Close()

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}

func helpText(s router.Screen) string {
	switch s {
	case router.ScreenSession:
		return "Available commands: user, pass, login, go, show, exit"
	case router.ScreenUsers:
		return "Available commands: list, add, edit, set, save, close, delete, go, show, exit"
	default:
		return "Available commands: go, exit"
	}
}
