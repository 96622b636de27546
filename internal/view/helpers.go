package view

import (
	"fmt"
	"strings"
)

const divider = "──────────────────────────────────────────────────────"

func renderPage(title, body, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
	} else {
		b.WriteString("-")
	}

	b.WriteString("\n")
	b.WriteString(divider)
	if strings.TrimSpace(footer) != "" {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render(footer))
	}

	return appStyle.Render(b.String())
}

func field(label, value string) string {
	return labelStyle.Render(label) + valueOrDash(value)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func pageFooter(current, total, count int) string {
	return fmt.Sprintf("página %d de %d · %d resultados", current, total, count)
}
