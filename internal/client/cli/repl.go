package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id int) error
	Refresh(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Toggle(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit"/"quit" or cancellation of ctx. The prompt and REPL messages go to
// out, the same writer the command handlers use.
//
//	Always:
//	  - help                 show available commands
//	  - login | logout       sign in / sign out
//	  - whoami               show the signed-in user
//	  - theme [light|dark]   show or set the theme
//	  - toggle               switch between light and dark
//	  - exit | quit          leave the program
//
//	Signed in:
//	  - posts | list | l     list posts
//	  - show <id>            show one post
//	  - refresh              reload the post list
//
// Handler errors are ignored here; handlers log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	say := func(args ...any) { fmt.Fprintln(out, args...) }

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(out, "postview %s> ", statusFn())
		line, err := readLine(ctx, reader)
		if err != nil && line == "" {
			if ctx.Err() != nil {
				say()
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say("Available commands: posts (list), show <id>, refresh, whoami, theme [light|dark], toggle, logout, exit")
			} else {
				say("Available commands: login, whoami, theme [light|dark], toggle, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "posts", "list", "l":
			if requireLogin(a, out) {
				_ = a.List(ctx)
			}

		case "show":
			if !requireLogin(a, out) {
				continue
			}
			id, ok := parseID(args)
			if !ok {
				say("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, id)

		case "refresh":
			if requireLogin(a, out) {
				_ = a.Refresh(ctx)
			}

		case "theme":
			_ = a.Theme(ctx, args)

		case "toggle":
			_ = a.Toggle(ctx)

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}
	}
}

// readLine reads one line from reader, giving up when ctx is done. On
// cancellation the pending read is abandoned; the REPL exits right after,
// so nothing else reads from reader.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func requireLogin(a execIface, out io.Writer) bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(out, "Please log in first (type 'login')")
	return false
}

func parseID(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
