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
	hasDrafts() bool
	Start(ctx context.Context) error
	Edit(ctx context.Context) error
	List(ctx context.Context) error
	Save(ctx context.Context) error
	Attach(ctx context.Context) error
	DeleteFile(ctx context.Context) error
	Reset(ctx context.Context) error
	Checklist(ctx context.Context) error
	Pick(ctx context.Context) error
	SubmitChecklist(ctx context.Context) error
	Apply(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the intake CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Before a form is started:
//	  - help           — show available commands
//	  - start          — open an employment-history form
//	  - checklist      — open the document checklist
//	  - apply          — submit a job application
//	  - exit | quit    — leave the program
//
//	With an open form:
//	  - help           — show available commands
//	  - edit           — edit one field of a draft
//	  - list           — list all drafts
//	  - save           — submit the whole draft set
//	  - attach         — upload and link files to a saved row
//	  - delfile        — remove a linked file
//	  - reset          — discard the form
//	  - pick           — select a file for a checklist category
//	  - submit         — submit the checklist
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("intake> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.hasDrafts() {
				printlnFn("Available commands: edit, (l)ist, save, attach, delfile, reset, pick, submit, exit")
			} else {
				printlnFn("Available commands: start, checklist, apply, exit")
			}

		case "start":
			_ = a.Start(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "save":
			_ = a.Save(ctx)

		case "attach":
			_ = a.Attach(ctx)

		case "delfile":
			_ = a.DeleteFile(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "checklist":
			_ = a.Checklist(ctx)

		case "pick":
			_ = a.Pick(ctx)

		case "submit":
			_ = a.SubmitChecklist(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
