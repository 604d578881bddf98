// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/screening-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintForm outputs a human-readable overview of a screening form.
func (p *Printer) PrintForm(form *types.Form) {
	if form == nil {
		return
	}

	var sb strings.Builder

	if form.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", form.Title))
	}
	sb.WriteString(fmt.Sprintf("Version:   %d\n", form.Version))
	sb.WriteString(fmt.Sprintf("Questions: %d\n", len(form.Questions)))
	if form.ShortlistThreshold != nil {
		sb.WriteString(fmt.Sprintf("Shortlist: %.0f points\n", *form.ShortlistThreshold))
	}
	sb.WriteString("\n")

	questions := form.OrderedQuestions()
	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := questions[i]
		prompt := q.Prompt
		if len(prompt) > 35 {
			prompt = prompt[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %d. %s\n", q.Order, prompt))
		sb.WriteString(fmt.Sprintf("     %s, %d rules", q.Type, len(q.Rules)))
		if q.Required {
			sb.WriteString(", required")
		}
		sb.WriteString("\n")
	}
	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more questions\n", len(questions)-maxItemsToShow))
	}

	p.printBox("SCREENING FORM", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the screening verdict with per-question detail.
func (p *Printer) PrintResult(result *types.ScreeningResult) {
	if result == nil {
		return
	}

	if !result.Valid {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Found %d validation errors:\n\n", len(result.Errors)))
		for i, e := range result.Errors {
			msg := e.Message
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", e.QuestionID))
			sb.WriteString(fmt.Sprintf("  %s\n", msg))
			if i < len(result.Errors)-1 {
				sb.WriteString("\n")
			}
		}
		p.printBox("INVALID SUBMISSION", sb.String())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:  %s\n", result.RecommendedStatus))
	sb.WriteString(fmt.Sprintf("Score:   %.1f\n", result.TotalScore))
	if result.HasKnockout {
		reason := result.KnockoutReason
		if len(reason) > 40 {
			reason = reason[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Knocked out: %s\n", reason))
	}
	sb.WriteString("\n")

	count := min(len(result.Evaluations), maxItemsToShow)
	for i := 0; i < count; i++ {
		eval := result.Evaluations[i]
		marker := "✓"
		if eval.IsKnockout {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s  %.1f points, %d rules fired\n",
			marker, eval.QuestionID, eval.ScoreEarned, len(eval.TriggeredRules)))
	}
	if len(result.Evaluations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more questions\n", len(result.Evaluations)-maxItemsToShow))
	}

	p.printBox("SCREENING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs aggregate counts for a batch screening run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(results []types.ScreeningResult) {
	if len(results) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO APPLICATIONS SCREENED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var shortlisted, rejected, review, invalid int
	for i := range results {
		if !results[i].Valid {
			invalid++
			continue
		}
		switch results[i].RecommendedStatus {
		case types.StatusShortlisted:
			shortlisted++
		case types.StatusRejected:
			rejected++
		default:
			review++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applications: %d\n\n", len(results)))
	sb.WriteString(fmt.Sprintf("  Shortlisted:   %d\n", shortlisted))
	sb.WriteString(fmt.Sprintf("  Rejected:      %d\n", rejected))
	sb.WriteString(fmt.Sprintf("  Manual review: %d\n", review))
	if invalid > 0 {
		sb.WriteString(fmt.Sprintf("  Invalid:       %d\n", invalid))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
