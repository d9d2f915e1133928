package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Update(ctx context.Context) error
	Theme(ctx context.Context, arg string) error
	Routes(ctx context.Context, query string) error
	Book(ctx context.Context) error
	Tickets(ctx context.Context) error
}

// runREPL reads a line from the reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit". Command handlers log their own errors.
//
// The reader must be the same one the command handlers prompt from, so
// that scripted input can interleave commands and answers without one
// buffer swallowing the other's lines.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cityride %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, update, theme [mode], routes [query], book, (t)ickets, logout, exit")
			} else {
				printlnFn("Available commands: login, register, theme [mode], routes [query], tickets, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.Update(ctx)

		case "theme":
			_ = a.Theme(ctx, strings.Join(args, " "))

		case "routes":
			_ = a.Routes(ctx, strings.Join(args, " "))

		case "book":
			_ = a.Book(ctx)

		case "t", "tickets":
			_ = a.Tickets(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
