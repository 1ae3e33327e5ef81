package cli

import (
	"context"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
)

func (a *App) Update(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter user id to update", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	name, err := GetOptionalText(a.reader, "New name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	email, err := GetOptionalText(a.reader, "New email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	u, verrs, err := a.users.Update(ctx, id, models.UpdateUserInput{Name: name, Email: email})
	if len(verrs) > 0 {
		printValidationErrors(verrs)
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "update failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("Updated", u.ID)
	return nil
}
