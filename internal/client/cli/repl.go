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
	Add(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	ClearSearch(ctx context.Context) error
	Stats(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

// runREPL starts a simple read/eval/print loop for the userkeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help                 show available commands
//	add                  add a user (interactive name/email prompts)
//	list [key [order]]   list users, optionally sorted (name, email,
//	                     created, updated; asc or desc)
//	show                 show a single user (interactive ID prompt)
//	update               update a user's name and/or email
//	delete               delete a user
//	search [text]        set the search query filtering list output
//	clearsearch          drop the search query
//	stats                show total and matching record counts
//	clearall             delete every record (asks for confirmation)
//	exit | quit          leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. No handler failure terminates the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uk> %s > ", statusFn()))
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
			printlnFn("Available commands: add, (l)ist [key [order]], show, update, delete, (s)earch [text], clearsearch, stats, clearall, exit")

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "show":
			_ = a.Show(ctx)

		case "update":
			_ = a.Update(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "s", "search":
			_ = a.Search(ctx, args)

		case "clearsearch":
			_ = a.ClearSearch(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "clearall":
			_ = a.ClearAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
