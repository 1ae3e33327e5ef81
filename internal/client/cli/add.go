package cli

import (
	"context"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	u, verrs, err := a.users.Create(ctx, models.CreateUserInput{Name: name, Email: email})
	if len(verrs) > 0 {
		printValidationErrors(verrs)
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "add failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("Added", u.ID)
	return nil
}

func printValidationErrors(errs []models.ValidationError) {
	for _, e := range errs {
		printlnFn("  " + e.Field + ": " + e.Message)
	}
}
