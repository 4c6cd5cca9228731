// Package observability provides boxed, human-readable output for evaluations,
// analytics and improvement plans. The CLI and the text report both use it.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxPointsToShow caps the missing/incorrect points listed per verdict
	maxPointsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines wrap.
//
//nolint:errcheck // output errors are not recoverable here
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(part, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintText outputs free text in a box.
func (p *Printer) PrintText(title, text string) {
	p.printBox(title, text)
}

// PrintHeader outputs a box of label/value pairs, skipping empty values.
func (p *Printer) PrintHeader(title string, fields [][2]string) {
	var sb strings.Builder
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %s\n", f[0]+":", f[1]))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs one evaluation record with its scores, verdict and feedback.
func (p *Printer) PrintEvaluation(title string, rec *types.EvaluationRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	if rec.Question != "" {
		sb.WriteString(fmt.Sprintf("Q: %s\n", rec.Question))
	}
	if rec.Answer != "" {
		sb.WriteString(fmt.Sprintf("A: %s\n", rec.Answer))
	}
	if rec.Question != "" || rec.Answer != "" {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Readiness:   %5.2f / 10\n", rec.ReadinessScore))
	sb.WriteString(fmt.Sprintf("Correctness: %5.2f / 10", rec.CorrectnessScore))
	if rec.RuleBoost > 0 {
		sb.WriteString(fmt.Sprintf("  (+%d key terms)", rec.RuleBoost))
	}
	if rec.CorrectnessFallback != "" {
		sb.WriteString(fmt.Sprintf("  (neutral: %s)", rec.CorrectnessFallback))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Relevance:   %5.2f / 10\n", rec.RelevanceScore))
	sb.WriteString(fmt.Sprintf("Confidence:  %5d / 10\n", rec.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("STAR:        %5d / 4   %s\n", rec.StarScore, starMarks(rec.StarBreakdown)))

	if rec.Verdict.Verdict != "" {
		sb.WriteString(fmt.Sprintf("\nVerdict: %s\n", rec.Verdict.Verdict))
		writePoints(&sb, "Missing", rec.Verdict.MissingPoints)
		writePoints(&sb, "Incorrect", rec.Verdict.IncorrectPoints)
	}

	if len(rec.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, f := range rec.Feedback {
			sb.WriteString(fmt.Sprintf("  • %s\n", f))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalytics outputs averages and per-question trends.
func (p *Printer) PrintAnalytics(summary *types.AnalyticsSummary) {
	if summary == nil {
		return
	}
	if summary.TotalQuestions == 0 {
		p.printBox("ANALYTICS", summary.Summary)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Questions answered: %d\n\n", summary.TotalQuestions))
	for _, dim := range []string{types.DimensionReadiness, types.DimensionCorrectness, types.DimensionConfidence, types.DimensionStar} {
		avg, ok := summary.Averages[dim]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s avg %5.2f   trend %s\n", dim, avg, trend(summary.Trends[dim])))
	}

	p.printBox("ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs focus areas, action items and the coaching summary.
func (p *Printer) PrintPlan(plan *types.ImprovementPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	if len(plan.FocusAreas) > 0 {
		sb.WriteString("Focus areas:\n")
		for _, area := range plan.FocusAreas {
			sb.WriteString(fmt.Sprintf("  • %s\n", area))
		}
		sb.WriteString("\n")
	}
	if len(plan.ActionItems) > 0 {
		sb.WriteString("Action items:\n")
		for i, item := range plan.ActionItems {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, item))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Coaching:\n")
	sb.WriteString(plan.Summary)

	p.printBox("IMPROVEMENT PLAN", sb.String())
}

func writePoints(sb *strings.Builder, label string, points []string) {
	if len(points) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(points), maxPointsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  - %s\n", points[i]))
	}
	if len(points) > maxPointsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(points)-maxPointsToShow))
	}
}

func starMarks(b types.StarBreakdown) string {
	mark := func(ok bool, label string) string {
		if ok {
			return "✓" + label
		}
		return "·" + label
	}
	return strings.Join([]string{
		mark(b.Situation, "S"),
		mark(b.Task, "T"),
		mark(b.Action, "A"),
		mark(b.Result, "R"),
	}, " ")
}

func trend(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, " → ")
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// wrap splits line into pieces of at most width runes, breaking on spaces where
// possible. Continuation lines keep the original indentation.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	var out []string
	current := ""
	for _, word := range strings.Fields(line) {
		for utf8.RuneCountInString(indent+word) > width {
			runes := []rune(word)
			cut := width - utf8.RuneCountInString(indent)
			if current != "" {
				out = append(out, current)
				current = ""
			}
			out = append(out, indent+string(runes[:cut]))
			word = string(runes[cut:])
		}
		switch {
		case current == "":
			current = indent + word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			out = append(out, current)
			current = indent + "  " + word
			if utf8.RuneCountInString(current) > width {
				current = indent + word
			}
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
