package odds

import "github.com/Vodeneev/oddsline/internal/pkg/payload"

// SelectBookmaker picks one bookmaker node:
//  1. the preferred id, when given and present (its market list is not checked);
//  2. else the first bookmaker with at least one market;
//  3. else the first bookmaker;
//  4. nil for an empty list.
func SelectBookmaker(bookmakers []payload.Bookmaker, preferredID *int) *payload.Bookmaker {
	if len(bookmakers) == 0 {
		return nil
	}
	if preferredID != nil {
		for i := range bookmakers {
			if bookmakers[i].ID == *preferredID {
				return &bookmakers[i]
			}
		}
	}
	for i := range bookmakers {
		if len(bookmakers[i].Markets) > 0 {
			return &bookmakers[i]
		}
	}
	return &bookmakers[0]
}
