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
	Diary(ctx context.Context) error
	Entries(ctx context.Context) error
	Patterns(ctx context.Context) error
	Chat(ctx context.Context, message string) error
	NewChat(ctx context.Context) error
	Conversations(ctx context.Context) error
	OpenConversation(ctx context.Context, id string) error
	DeleteConversation(ctx context.Context, id string) error
	Cycle(ctx context.Context) error
	Cycles(ctx context.Context) error
	Record(ctx context.Context) error
	SetPain(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Status(ctx context.Context) error
	Language(ctx context.Context, code string) error
}

// runREPL starts a simple read-eval-print loop for the Ágora CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	diary                - record a new diary entry
//	entries              - list recent diary entries
//	patterns             - show the pattern analysis
//	chat <message>       - talk to the companion
//	new                  - start a fresh conversation
//	conversations        - list saved conversations
//	open <id>            - resume a saved conversation
//	deleteconv <id>      - delete a saved conversation
//	cycle                - record a cycle entry
//	cycles               - list cycle entries
//	record               - show the monthly pain record
//	pain                 - set one day's pain intensity
//	subscribe            - start the subscription purchase flow
//	status               - show the subscription status
//	language <es|en>     - change the display language
//	exit | quit          - leave the program
//
// Errors returned by command handlers are not propagated; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("agora %s > ", statusFn()))
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
			printlnFn("Available commands: diary, entries, patterns, chat <message>, new, conversations, open <id>, deleteconv <id>, cycle, cycles, record, pain, subscribe, status, language <es|en>, exit")

		case "diary":
			_ = a.Diary(ctx)

		case "entries":
			_ = a.Entries(ctx)

		case "patterns":
			_ = a.Patterns(ctx)

		case "chat":
			if len(args) == 0 {
				printlnFn("Usage: chat <message>")
				continue
			}
			_ = a.Chat(ctx, strings.Join(args, " "))

		case "new":
			_ = a.NewChat(ctx)

		case "conversations":
			_ = a.Conversations(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				continue
			}
			_ = a.OpenConversation(ctx, args[0])

		case "deleteconv":
			if len(args) == 0 {
				printlnFn("Usage: deleteconv <id>")
				continue
			}
			_ = a.DeleteConversation(ctx, args[0])

		case "cycle":
			_ = a.Cycle(ctx)

		case "cycles":
			_ = a.Cycles(ctx)

		case "record":
			_ = a.Record(ctx)

		case "pain":
			_ = a.SetPain(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "status":
			_ = a.Status(ctx)

		case "language":
			if len(args) == 0 {
				printlnFn("Usage: language <es|en>")
				continue
			}
			_ = a.Language(ctx, args[0])

		case "exit", "quit":
			printlnFn("¡Hasta pronto!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
