package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/planeswalker/internal/mana"
	colorize "github.com/fatih/color"
	"golang.org/x/term"
)

func okMark() string   { return colorize.GreenString("✔") }
func failMark() string { return colorize.RedString("✘") }

func label(s string) string { return colorize.CyanString(s) }

func printNumbered(lines []string) {
	for i, line := range lines {
		fmt.Printf("%d. %s\n", i+1, line)
	}
}

// manaColor returns a printer for text in the given mana color
func manaColor(c mana.Color) *colorize.Color {
	switch c {
	case mana.White:
		return colorize.New(colorize.FgHiWhite, colorize.Bold)
	case mana.Blue:
		return colorize.New(colorize.FgBlue)
	case mana.Black:
		return colorize.New(colorize.FgHiBlack)
	case mana.Red:
		return colorize.New(colorize.FgRed)
	case mana.Green:
		return colorize.New(colorize.FgGreen)
	default:
		return colorize.New(colorize.FgWhite)
	}
}

// manaSymbols renders a cost as colored symbols, e.g. {1}{R}
func manaSymbols(cost mana.Cost) string {
	if cost.Len() == 0 {
		return "{0}"
	}
	var sb strings.Builder
	for _, p := range cost.Components() {
		sym := p.Color.Symbol()
		if p.Color == mana.Colorless {
			sb.WriteString(manaColor(p.Color).Sprintf("{%d}", p.Amount))
			continue
		}
		sb.WriteString(manaColor(p.Color).Sprint(strings.Repeat("{"+sym+"}", p.Amount)))
	}
	return sb.String()
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
