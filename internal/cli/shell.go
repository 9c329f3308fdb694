package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/freshpos/internal/adapters/cli"
	"github.com/example/freshpos/internal/core/scan"
	"github.com/example/freshpos/internal/ports/primary"
	"github.com/example/freshpos/internal/wire"
)

const shellHelp = `Commands:
  scan <path>      scan an uploaded image file
  capture <path>   scan a camera capture (content-hashed)
  add <label>      add a catalog item directly
  pick a|b         resolve an ambiguous scan
  cancel           discard the pending choice
  qty <line#>      start a keypad quantity edit, then: digits, back, ok, esc
  rm <line#>       remove a line
  list             show the receipt
  pay              settle into the final bill
  new              start a new order
  quit             leave the shell`

// ShellCmd returns the interactive checkout session command.
func ShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run an interactive checkout session",
		Long:  "Start a checkout station session. One session holds one order:\nscan images, resolve ambiguous scans, edit quantities, settle, reset.\n\n" + shellHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := &shellSession{
				svc:     wire.CheckoutService(),
				receipt: wire.ReceiptAdapterWithOutput(cmd.OutOrStdout()),
				out:     cmd.OutOrStdout(),
			}
			return session.run(cmd.InOrStdin())
		},
	}
}

// shellSession drives one interactive checkout over a line protocol.
type shellSession struct {
	svc     primary.CheckoutService
	receipt *cliadapter.ReceiptAdapter
	out     io.Writer
}

func (s *shellSession) run(in io.Reader) error {
	ctx := context.Background()
	fmt.Fprintln(s.out, "freshpos checkout - type 'help' for commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		verb, rest := fields[0], fields[1:]

		if verb == "quit" || verb == "exit" {
			return nil
		}

		// An in-progress edit captures keypad input first.
		if s.editing(ctx) && s.handleKeypad(ctx, verb) {
			s.render(ctx)
			continue
		}

		s.dispatch(ctx, verb, rest)
	}
}

func (s *shellSession) dispatch(ctx context.Context, verb string, rest []string) {
	switch verb {
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "list":
		s.render(ctx)
	case "scan", "capture":
		if len(rest) != 1 {
			fmt.Fprintf(s.out, "usage: %s <path>\n", verb)
			return
		}
		s.doScan(ctx, verb, rest[0])
	case "add":
		if len(rest) == 0 {
			fmt.Fprintln(s.out, "usage: add <label>")
			return
		}
		if _, err := s.svc.AddItem(ctx, strings.Join(rest, " ")); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.render(ctx)
	case "pick":
		if len(rest) != 1 {
			fmt.Fprintln(s.out, "usage: pick a|b")
			return
		}
		s.doPick(ctx, rest[0])
	case "cancel":
		if err := s.svc.CancelChoice(ctx); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.render(ctx)
	case "qty":
		if len(rest) != 1 {
			fmt.Fprintln(s.out, "usage: qty <line#>")
			return
		}
		id, ok := s.lineID(ctx, rest[0])
		if !ok {
			return
		}
		if err := s.svc.StartEdit(ctx, id); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.render(ctx)
	case "rm":
		if len(rest) != 1 {
			fmt.Fprintln(s.out, "usage: rm <line#>")
			return
		}
		id, ok := s.lineID(ctx, rest[0])
		if !ok {
			return
		}
		if err := s.svc.RemoveLine(ctx, id); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.render(ctx)
	case "pay":
		bill, err := s.svc.Pay(ctx)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		if err := s.receipt.RenderBill(ctx, bill); err != nil {
			fmt.Fprintln(s.out, err)
		}
		fmt.Fprintln(s.out, "type 'new' to start the next order")
	case "new":
		if err := s.svc.NewOrder(ctx); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintln(s.out, "New order started.")
	default:
		fmt.Fprintf(s.out, "unknown command %q - type 'help'\n", verb)
	}
}

func (s *shellSession) editing(ctx context.Context) bool {
	view, err := s.svc.CartView(ctx)
	return err == nil && view.Edit != nil
}

// handleKeypad consumes one token as keypad input. A digit string
// presses each digit in order. Returns false for tokens that are not
// keypad input so regular commands still work mid-edit.
func (s *shellSession) handleKeypad(ctx context.Context, token string) bool {
	switch token {
	case "ok":
		if err := s.svc.ConfirmEdit(ctx); err != nil {
			fmt.Fprintln(s.out, err)
		}
		return true
	case "back":
		if err := s.svc.Backspace(ctx); err != nil {
			fmt.Fprintln(s.out, err)
		}
		return true
	case "esc":
		if err := s.svc.CancelEdit(ctx); err != nil {
			fmt.Fprintln(s.out, err)
		}
		return true
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	for _, r := range token {
		if err := s.svc.PressDigit(ctx, int(r-'0')); err != nil {
			fmt.Fprintln(s.out, err)
			return true
		}
	}
	return true
}

// doScan runs one scan input through the session.
func (s *shellSession) doScan(ctx context.Context, verb, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "cannot read %s: %v\n", path, err)
		return
	}

	req := primary.ScanRequest{Image: bytes.NewReader(data)}
	if verb == "capture" {
		req.Kind = scan.SourceCapture
		req.Identity = scan.HashBytes(data)
	} else {
		req.Kind = scan.SourceUpload
		req.Identity = uploadIdentity(path)
	}

	resp, err := s.svc.Scan(ctx, req)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.receipt.RenderScanOutcome(resp)
	if resp.Outcome == primary.OutcomeAdded {
		s.render(ctx)
	}
}

// doPick resolves the pending choice by slot letter or full label.
func (s *shellSession) doPick(ctx context.Context, slot string) {
	view, err := s.svc.CartView(ctx)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if view.Pending == nil {
		fmt.Fprintln(s.out, "no disambiguation choice is pending")
		return
	}

	label := slot
	switch slot {
	case "a", "A":
		label = view.Pending.CandidateA
	case "b", "B":
		label = view.Pending.CandidateB
	}

	resp, err := s.svc.Choose(ctx, label)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.receipt.RenderScanOutcome(resp)
	s.render(ctx)
}

// lineID maps a 1-based display number to the line's stable id.
func (s *shellSession) lineID(ctx context.Context, arg string) (string, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		fmt.Fprintf(s.out, "invalid line number %q\n", arg)
		return "", false
	}
	view, err := s.svc.CartView(ctx)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return "", false
	}
	if n > len(view.Lines) {
		fmt.Fprintf(s.out, "line %d does not exist\n", n)
		return "", false
	}
	return view.Lines[n-1].ID, true
}

func (s *shellSession) render(ctx context.Context) {
	if err := s.receipt.Render(ctx); err != nil {
		fmt.Fprintln(s.out, err)
	}
}

// uploadIdentity derives a stable id for a selected file: the same
// selection re-sent by a re-render maps to the same id, while a changed
// or different file maps to a new one.
func uploadIdentity(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return abs
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())
}
