package cli

import (
	"context"
	"time"
)

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter user id to show", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	u, err := a.users.GetByID(id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("Name:   ", u.Name)
	printlnFn("Email:  ", u.Email)
	printlnFn("Created:", u.CreatedAt.Format(time.RFC3339))
	printlnFn("Updated:", u.UpdatedAt.Format(time.RFC3339))
	return nil
}
