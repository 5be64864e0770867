// Command createsuperuser creates an administrative account. It reads the
// same -c/-d flags as the server and prompts for email and password.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/prompt"
	"github.com/dmitrijs2005/recipekeeper/internal/server"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipekeeper/internal/server/services"
)

// readPassword is a seam over prompt.ConfirmedPassword.
var readPassword = prompt.ConfirmedPassword

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	db, m, err := server.OpenStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var conn dbx.DBTX
	if db != nil {
		conn = db
		defer db.Close()
	}

	if err := run(ctx, cfg, conn, m, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		if db != nil {
			_ = db.Close()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, db dbx.DBTX, m repomanager.RepositoryManager, in *bufio.Reader, out io.Writer) error {
	accounts, err := services.New(db, m, cfg)
	if err != nil {
		return err
	}

	email, err := prompt.Text(in, "Email", out)
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}

	password, err := readPassword(out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := accounts.Credentials().CreateSuperuser(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Superuser %s created successfully.\n", account.Email)
	return nil
}

// describe turns expected failures into operator-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateIdentity):
		return "that email is already registered"
	case errors.Is(err, common.ErrInvalidIdentity):
		return "enter a valid email address"
	case errors.Is(err, common.ErrInvalidCredential):
		return fmt.Sprintf("password must be at least %d characters", services.MinPasswordLength)
	case errors.Is(err, prompt.ErrPasswordMismatch):
		return "passwords do not match"
	default:
		return err.Error()
	}
}
