// Package payload decodes raw API-Sports JSON into typed provider nodes.
//
// Two odds shapes are recognised per bookmaker node:
//
// ## bets/values (API-Football v3, also served by some v1 books)
//
// response[].bookmakers[] = {id, name, bets: [{id, name, values: [{value, odd, handicap?}]}]}.
// Labels are "Home"/"Draw"/"Away", "Over 2.5", "Home -1"; the line is usually
// embedded in the label.
//
// ## markets/outcomes (v1 american-football and basketball books)
//
// response[].bookmakers[] = {id, name, markets: [{id?, name|key, outcomes: [{name|label, price, point|total|line}]}]}.
// The line is usually an explicit field.
//
// Fixtures: soccer nodes carry {fixture: {id, date, status}, teams, goals};
// v1 nodes carry {id|game.id, date|game.date, teams|home/away, scores, status}.
package payload
