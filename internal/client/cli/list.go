package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userkeeper/internal/client/query"
)

// List prints the records matching the current search query. Optional args
// select a sort: list [name|email|created|updated] [asc|desc]. Without an
// explicit sort, the most recently updated records come first.
func (a *App) List(ctx context.Context, args []string) error {
	key, order := query.SortByUpdatedAt, query.OrderDesc
	if len(args) > 0 {
		var err error
		if key, err = query.ParseSortKey(args[0]); err != nil {
			printlnFn("Error:", err.Error())
			return nil
		}
		order = query.OrderAsc
	}
	if len(args) > 1 {
		var err error
		if order, err = query.ParseOrder(args[1]); err != nil {
			printlnFn("Error:", err.Error())
			return nil
		}
	}

	q := a.currentQuery()
	matched, stats, verrs := a.users.Search(q)
	if len(verrs) > 0 {
		printValidationErrors(verrs)
		return nil
	}

	for _, u := range query.Sort(matched, key, order) {
		printlnFn(renderUser(u, q, a.colored))
	}
	printlnFn(fmt.Sprintf("%d of %d users", stats.Filtered, stats.Total))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	_, stats, verrs := a.users.Search(a.currentQuery())
	if len(verrs) > 0 {
		printValidationErrors(verrs)
		return nil
	}
	printlnFn(fmt.Sprintf("total: %d, matching search: %d", stats.Total, stats.Filtered))
	return nil
}
