package cli

import (
	"context"
)

func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter user id to delete", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "delete failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("Deleted", id)
	return nil
}

// ClearAll wipes the whole collection after an explicit confirmation.
func (a *App) ClearAll(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete ALL users? Type 'yes' to confirm", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.users.ClearAll(ctx); err != nil {
		a.log.Error(ctx, "clear failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("All users deleted")
	return nil
}
