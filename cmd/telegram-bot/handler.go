package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/resolve"
)

// Telegram caps messages at 4096 characters.
const maxMessageLen = 4000

type handler struct {
	api     *apiClient
	allowed map[int64]bool // nil: everyone
	send    func(tgbotapi.Chattable)
}

type matchQuery struct {
	League string
	Date   string
	Home   string
	Away   string
}

var errUsage = errors.New("usage")

// parseMatchArgs reads "<league> <date> <home> vs <away>".
func parseMatchArgs(args []string) (matchQuery, error) {
	if len(args) < 3 {
		return matchQuery{}, errUsage
	}
	league, ok := enums.ParseLeague(args[0])
	if !ok {
		return matchQuery{}, fmt.Errorf("unknown league %q, use one of: %s", args[0], strings.Join(enums.LeagueNames(), ", "))
	}
	home, away, ok := resolve.SplitTeams(strings.Join(args[2:], " "))
	if !ok {
		return matchQuery{}, errUsage
	}
	return matchQuery{League: league.String(), Date: args[1], Home: home, Away: away}, nil
}

func (h *handler) reply(chatID int64, text string, markdown bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	h.send(msg)
}

func (h *handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if h.allowed != nil && (message.From == nil || !h.allowed[message.From.ID]) {
		h.reply(message.Chat.ID, "Access denied. You are not authorized to use this bot.", false)
		return
	}

	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return
	}
	parts := strings.Fields(text)
	command := strings.ToLower(parts[0])
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}
	args := parts[1:]

	chatID := message.Chat.ID
	h.send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	var (
		out string
		err error
	)
	switch command {
	case "/start", "/help":
		h.reply(chatID, helpText, true)
		return
	case "/odds":
		out, err = h.odds(ctx, args)
	case "/resolve":
		out, err = h.resolve(ctx, args)
	case "/books":
		out, err = h.books(ctx, args)
	default:
		h.reply(chatID, "Unknown command. Use /help to see available commands.", false)
		return
	}

	switch {
	case errors.Is(err, errUsage):
		h.reply(chatID, helpText, true)
	case err != nil:
		slog.Warn("Command failed", "command", command, "error", err)
		h.reply(chatID, "Error: "+err.Error(), false)
	default:
		for _, chunk := range splitMessage(out, maxMessageLen) {
			h.reply(chatID, chunk, true)
		}
	}
}

func (h *handler) odds(ctx context.Context, args []string) (string, error) {
	q, err := parseMatchArgs(args)
	if err != nil {
		return "", err
	}
	r, err := h.api.Odds(ctx, q)
	if err != nil {
		return "", err
	}
	if r.Odds == nil {
		return formatResolution(models.ResolutionResult{FixtureID: r.FixtureID, Candidates: r.Candidates, PickedReason: r.PickedReason}), nil
	}
	id := 0
	if r.FixtureID != nil {
		id = *r.FixtureID
	}
	return formatOdds(q, id, r.Odds), nil
}

func (h *handler) resolve(ctx context.Context, args []string) (string, error) {
	q, err := parseMatchArgs(args)
	if err != nil {
		return "", err
	}
	res, err := h.api.Resolve(ctx, q)
	if err != nil {
		return "", err
	}
	return formatResolution(*res), nil
}

func (h *handler) books(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage
	}
	league, ok := enums.ParseLeague(args[0])
	if !ok {
		return "", fmt.Errorf("unknown league %q", args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return "", errUsage
	}
	books, err := h.api.Bookmakers(ctx, league.String(), id)
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return fmt.Sprintf("No bookmakers quote fixture %d.", id), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*Bookmakers for fixture %d*\n\n", id)
	for _, bm := range books {
		fmt.Fprintf(&b, "%d. %s (%d markets)\n", bm.ID, escapeMarkdown(bm.Name), bm.Markets)
	}
	return b.String(), nil
}

func formatOdds(q matchQuery, fixtureID int, o *models.NormalizedOdds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s vs %s* (%s, fixture %d)\n", escapeMarkdown(q.Home), escapeMarkdown(q.Away), strings.ToUpper(q.League), fixtureID)
	if o.Bookmaker != nil {
		fmt.Fprintf(&b, "Bookmaker: %s\n", escapeMarkdown(o.Bookmaker.Name))
	}
	b.WriteString("\n")
	if o.IsEmpty() {
		b.WriteString("No odds available.")
		return b.String()
	}

	if ml := o.Moneyline; ml != nil {
		fmt.Fprintf(&b, "Moneyline: home %s | away %s", price(ml.Home), price(ml.Away))
		if ml.Draw != nil {
			fmt.Fprintf(&b, " | draw %s", price(ml.Draw))
		}
		b.WriteString("\n")
	}
	if sp := o.Spread; sp != nil {
		fmt.Fprintf(&b, "Spread %s: home %s | away %s\n", price(sp.Line), price(sp.HomePrice), price(sp.AwayPrice))
	}
	for _, t := range []struct {
		name  string
		total *models.Total
	}{{"Total", o.Total}, {"Half total", o.HalfTotal}, {"Quarter total", o.QuarterTotal}} {
		if t.total == nil {
			continue
		}
		fmt.Fprintf(&b, "%s %s: over %s | under %s\n", t.name, price(t.total.Line), price(t.total.OverPrice), price(t.total.UnderPrice))
	}

	if len(o.Props) > 0 {
		aliases := make([]string, 0, len(o.Props))
		for a := range o.Props {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)
		b.WriteString("\nProps: ")
		for i, a := range aliases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (%d)", escapeMarkdown(a), len(o.Props[a]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatResolution(res models.ResolutionResult) string {
	var b strings.Builder
	if res.FixtureID != nil {
		fmt.Fprintf(&b, "Fixture *%d*: %s\n", *res.FixtureID, escapeMarkdown(res.PickedReason))
	} else {
		fmt.Fprintf(&b, "%s\n", escapeMarkdown(res.PickedReason))
	}
	if len(res.Candidates) == 0 {
		return b.String()
	}
	b.WriteString("\nCandidates:\n")
	for _, c := range res.Candidates {
		fmt.Fprintf(&b, "%d. %s vs %s (%.2f)\n", c.FixtureID, escapeMarkdown(c.Home), escapeMarkdown(c.Away), c.Score)
	}
	return b.String()
}

func price(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// escapeMarkdown escapes the legacy Markdown entities Telegram parses.
func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return replacer.Replace(text)
}

// splitMessage cuts text on line boundaries into chunks of at most limit bytes.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var chunks []string
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if b.Len()+len(line) > limit && b.Len() > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

const helpText = `*Oddsline Bot*

/odds <league> <date> <home> vs <away> - normalized odds
  Example: /odds nba 2024-02-03 Lakers vs Celtics

/resolve <league> <date> <home> vs <away> - find the fixture id

/books <league> <fixture id> - bookmakers quoting a fixture

/help - show this message

Leagues: nba, ncaab, ncaaf, nfl, soccer. Dates are YYYY-MM-DD.`
