package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var page = template.Must(template.New("resume.html").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
}).ParseFS(templatesFS, "templates/resume.html"))

// WriteHTML пишет печатную HTML-страницу; PDF делает браузер или другая печать хоста.
func WriteHTML(w io.Writer, r Rendered) error {
	if err := page.Execute(w, r); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// WriteText пишет резюме простым текстом для терминала.
func WriteText(w io.Writer, r Rendered) error {
	var b strings.Builder
	b.WriteString(strings.ToUpper(r.Header.Name))
	b.WriteByte('\n')
	if line := r.Header.ContactLine(); line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if r.Header.Summary != "" {
		b.WriteString("\n" + r.Header.Summary + "\n")
	}

	for _, s := range r.Sections {
		b.WriteString("\n== " + s.Heading + " ==\n")
		switch s.Style {
		case StyleInline:
			b.WriteString(s.Inline + "\n")
		case StyleBadges:
			tags := make([]string, 0, len(s.Items))
			for _, it := range s.Items {
				label := it.Title
				if it.Subtitle != "" {
					label += " (" + it.Subtitle + ")"
				}
				tags = append(tags, "["+label+"]")
			}
			b.WriteString(strings.Join(tags, " ") + "\n")
		default:
			for _, it := range s.Items {
				writeTextItem(&b, it)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextItem(b *strings.Builder, it Item) {
	b.WriteString("* " + it.Title)
	if it.Period != "" {
		b.WriteString("  (" + it.Period + ")")
	}
	b.WriteByte('\n')
	if it.Subtitle != "" {
		b.WriteString("  " + it.Subtitle + "\n")
	}
	if it.URL != "" {
		b.WriteString("  " + it.URL + "\n")
	}
	if it.Body != "" {
		for _, line := range strings.Split(it.Body, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
}
