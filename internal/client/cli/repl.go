package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Register(ctx context.Context) error
	AddTask(ctx context.Context) error
	List(ctx context.Context) error
	Mine(ctx context.Context) error
	Report(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the task manager CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - addtask        - assign a task to a user
//	  - (l)ist         - list all tasks
//	  - mine           - list your tasks
//	  - whoami         - show the current user
//	  - logout         - log out
//
//	Admin:
//	  - register       - create a user
//	  - report         - generate the overview reports
//	  - stats          - show the last generated reports
//
// Handlers return errors instead of printing them; the loop prints one
// line per failed command and keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tm %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: addtask, (l)ist, mine, register, report, stats, whoami, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: addtask, (l)ist, mine, whoami, logout, exit")
			default:
				printlnFn("Available commands: login, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "addtask":
			cmdErr = a.AddTask(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "mine":
			cmdErr = a.Mine(ctx)

		case "report":
			cmdErr = a.Report(ctx)

		case "stats":
			cmdErr = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(errorMessage(cmdErr))
		}

		if err != nil {
			return
		}
	}
}
