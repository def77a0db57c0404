package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/prepdesk/bankdigest/app/digest"
)

var titleCaser = cases.Title(language.English)

// displayTitle renders a category tag as a human heading, e.g.
// "banking_finance" becomes "Banking Finance".
func displayTitle(category digest.Category) string {
	return titleCaser.String(strings.ReplaceAll(string(category), "_", " "))
}

func sectionBanner(category digest.Category) string {
	return "🔷 " + strings.ToUpper(displayTitle(category))
}

// categoryPrompt instructs the generative backend to turn one category
// bucket into exam-ready study notes. The emoji markers double as
// heading cues for the document renderer.
func categoryPrompt(category digest.Category, dateStr string, articles []digest.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are preparing daily current affairs notes for Indian banking exam aspirants (IBPS, SBI, RBI Grade B).\n\n")
	fmt.Fprintf(&b, "Date: %s\nSection: %s\n\n", dateStr, displayTitle(category))
	b.WriteString("Summarize the news items below into concise study notes. For each item:\n")
	b.WriteString("- Start the headline line with 🔹\n")
	b.WriteString("- Follow with 2-3 short factual sentences covering figures, names and dates\n")
	b.WriteString("- End with one line starting with ✅ stating the exam-relevant takeaway\n\n")
	b.WriteString("Write plain text only. No markdown, no asterisks, no hash signs.\n\n")
	b.WriteString("News items:\n\n")

	for i, article := range articles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, article.Title)
		if article.Description != "" {
			fmt.Fprintf(&b, "   %s\n", article.Description)
		}
		fmt.Fprintf(&b, "   (Source: %s)\n\n", article.Source)
	}

	return b.String()
}

// quizPrompt asks for practice questions over the already-assembled
// section text so the quiz only covers what the digest actually says.
func quizPrompt(digestText string) string {
	var b strings.Builder

	b.WriteString("Based only on the study notes below, write a practice quiz for banking exam aspirants.\n\n")
	b.WriteString("Format:\n")
	b.WriteString("- First line: 🔷 PRACTICE QUIZ\n")
	b.WriteString("- 5 multiple choice questions, each with options a) to d)\n")
	b.WriteString("- After all questions, an answer key with one line per question\n\n")
	b.WriteString("Write plain text only. No markdown, no asterisks, no hash signs.\n\n")
	b.WriteString("Study notes:\n\n")
	b.WriteString(digestText)

	return b.String()
}
