// Package shell implements the interactive account prompt used by the client.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/atinyakov/AccountKeeper/internal/models"
)

// AccountsService defines the account operations the shell drives.
type AccountsService interface {
	List() []models.Account
	NewDraft() models.AccountDraft
	EditDraft(id string) (models.AccountDraft, error)
	Submit(ctx context.Context, draft models.AccountDraft) (models.Account, models.AccountDraftErrors, error)
	Remove(ctx context.Context, id string) bool
}

// Shell reads commands from in and writes results to out.
type Shell struct {
	svc AccountsService
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Shell over svc.
func New(svc AccountsService, in io.Reader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: bufio.NewScanner(in), out: out}
}

const helpText = "Available commands: help, list, add, edit <id>, delete <id>, exit"

// Run processes commands until "exit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	for ctx.Err() == nil {
		fmt.Fprint(s.out, "accountkeeper> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		args := strings.Fields(s.in.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Fprintln(s.out, helpText)
		case "list":
			s.list()
		case "add":
			s.edit(ctx, s.svc.NewDraft())
		case "edit":
			if len(args) < 2 {
				fmt.Fprintln(s.out, "Usage: edit <id>")
				continue
			}
			draft, err := s.svc.EditDraft(args[1])
			if err != nil {
				fmt.Fprintln(s.out, "Account not found")
				continue
			}
			s.edit(ctx, draft)
		case "delete":
			if len(args) < 2 {
				fmt.Fprintln(s.out, "Usage: delete <id>")
				continue
			}
			if s.svc.Remove(ctx, args[1]) {
				fmt.Fprintln(s.out, "Account deleted")
			} else {
				fmt.Fprintln(s.out, "Account not found")
			}
		case "exit":
			fmt.Fprintln(s.out, "Bye")
			return
		default:
			fmt.Fprintln(s.out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func (s *Shell) edit(ctx context.Context, base models.AccountDraft) {
	draft, ok := s.promptDraft(base)
	if !ok {
		return
	}
	account, errs, err := s.svc.Submit(ctx, draft)
	if err != nil {
		fmt.Fprintln(s.out, "Account not saved:", err)
		return
	}
	if len(errs) > 0 {
		s.printErrors(errs)
		return
	}
	fmt.Fprintf(s.out, "Account %s saved\n", account.ID)
}

func (s *Shell) list() {
	accounts := s.svc.List()
	if len(accounts) == 0 {
		fmt.Fprintln(s.out, "No accounts")
		return
	}
	fmt.Fprintln(s.out, "Stored accounts:")
	for _, a := range accounts {
		password := "-"
		if a.Password != nil {
			password = strings.Repeat("*", utf8.RuneCountInString(*a.Password))
		}
		fmt.Fprintf(s.out, "ID: %s\nType: %s\nLogin: %s\nPassword: %s\nLabels: %s\n---\n",
			a.ID, a.Type, a.Login, password, models.JoinLabels(a.Labels))
	}
}
