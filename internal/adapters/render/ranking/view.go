package ranking

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	// Limit caps the number of rows. Zero shows every account.
	Limit int
}

const scoreBarWidth = 12

func renderRanking(run domain.AnalysisRun, opts RenderOptions, s styles) string {
	accounts := run.Accounts
	if opts.Limit > 0 && len(accounts) > opts.Limit {
		accounts = accounts[:opts.Limit]
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Interaction circle for @%s", run.Handle)),
		s.header.Render(headerLine(run, len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No interactions found for this period."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	topScore := accounts[0].Score
	rows := make([][]string, 0, len(accounts))
	for i, account := range accounts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.handle.Render("@" + account.Handle),
			truncate(account.DisplayName, 24),
			formatScore(account.Score),
			renderScoreBar(account.Score, topScore, scoreBarWidth, s),
			s.detail.Render(breakdown(account.Counts)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers("#", "HANDLE", "NAME", "SCORE", "", "LIKES/REPLIES/REPOSTS/MENTIONS/QUOTES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.headerCell
			}
			return s.cell
		})

	lines = append(lines, t.Render())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(run domain.AnalysisRun, shown int) string {
	parts := []string{
		fmt.Sprintf("period: %s", run.Period.Label()),
		fmt.Sprintf("accounts: %d", shown),
	}
	if run.Revision != "" {
		parts = append(parts, "revision: "+run.Revision)
	}
	if run.CacheHit {
		parts = append(parts, "cached")
	}
	if run.ID != "" {
		parts = append(parts, "run: "+run.ID)
	}
	return strings.Join(parts, "  ")
}

func breakdown(c domain.InteractionCounts) string {
	return fmt.Sprintf("%d/%d/%d/%d/%d", c.Likes, c.Replies, c.Reposts, c.Mentions, c.Quotes)
}

func formatScore(score float64) string {
	if score == math.Trunc(score) {
		return humanize.Comma(int64(score))
	}
	return humanize.CommafWithDigits(score, 1)
}

func renderScoreBar(score, top float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if top > 0 {
		filled = int(math.Round(float64(width) * score / top))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func renderRuns(runs []domain.AnalysisRun, s styles) string {
	lines := []string{
		s.title.Render("Analysis history"),
		s.header.Render(fmt.Sprintf("runs: %d", len(runs))),
	}
	if len(runs) == 0 {
		lines = append(lines, s.empty.Render("No analyses recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			"@" + run.Handle,
			string(run.Period),
			humanize.Time(run.CreatedAt),
		})
	}

	lines = append(lines, simpleTable(s, []string{"ID", "HANDLE", "PERIOD", "WHEN"}, rows))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPacks(packs []domain.StarterPack, s styles) string {
	lines := []string{
		s.title.Render("Published starter packs"),
		s.header.Render(fmt.Sprintf("packs: %d", len(packs))),
	}
	if len(packs) == 0 {
		lines = append(lines, s.empty.Render("No starter packs published yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(packs))
	for _, pack := range packs {
		rows = append(rows, []string{
			pack.Name,
			strconv.Itoa(pack.Members),
			pack.URL,
			humanize.Time(pack.CreatedAt),
		})
	}

	lines = append(lines, simpleTable(s, []string{"NAME", "MEMBERS", "URL", "WHEN"}, rows))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func simpleTable(s styles, headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.headerCell
			}
			return s.cell
		}).
		Render()
}

func truncate(value string, max int) string {
	runes := []rune(strings.TrimSpace(value))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max-1]) + "…"
}
