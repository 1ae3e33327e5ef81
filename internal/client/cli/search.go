package cli

import (
	"context"
	"strings"
)

// Search sets the query filtering list output. The query can be given as
// arguments ("search jane") or entered interactively. Rendering of the
// filtered view is debounced so that rapid successive queries (e.g. piped
// input) only draw the final result.
func (a *App) Search(ctx context.Context, args []string) error {
	q := strings.Join(args, " ")
	if q == "" {
		var err error
		q, err = GetSimpleText(a.reader, "Enter search text", a.out)
		if err != nil {
			a.log.Error(ctx, "input error", "error", err)
			return err
		}
	}

	if _, _, verrs := a.users.Search(q); len(verrs) > 0 {
		printValidationErrors(verrs)
		return nil
	}

	a.setQuery(q)
	a.debounce.Do(func() {
		_ = a.List(context.Background(), nil)
	})
	return nil
}

func (a *App) ClearSearch(ctx context.Context) error {
	a.debounce.Stop()
	a.setQuery("")
	printlnFn("Search cleared")
	return nil
}
