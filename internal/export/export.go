// Package export renders chat transcripts to standalone HTML for the
// admin panel download.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/limitless-infotech/auralis/internal/store"
)

// Exporter converts a session transcript into an HTML document. Bot
// replies are treated as markdown; user messages are rendered verbatim.
type Exporter struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewExporter creates a transcript exporter.
func NewExporter() (*Exporter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("transcript").Parse(transcriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing transcript template: %w", err)
	}
	return &Exporter{md: md, tmpl: tmpl}, nil
}

// entry is one rendered transcript row.
type entry struct {
	Sender  string
	When    string
	Content template.HTML
	Intent  string
}

// transcriptData holds the data passed to the HTML template.
type transcriptData struct {
	SessionID string
	Page      string
	Started   string
	Entries   []entry
}

// Render produces the HTML transcript for a session.
func (e *Exporter) Render(sess *store.Session, messages []store.Message) ([]byte, error) {
	if sess == nil {
		return nil, fmt.Errorf("session is required")
	}

	data := transcriptData{
		SessionID: sess.ID,
		Page:      sess.CurrentPage,
		Started:   sess.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
	}

	for _, msg := range messages {
		row := entry{
			Sender: msg.Sender,
			When:   msg.CreatedAt.Format("15:04:05"),
			Intent: intentFromMetadata(msg.Metadata),
		}
		if msg.Sender == "bot" {
			var buf bytes.Buffer
			if err := e.md.Convert([]byte(msg.Content), &buf); err != nil {
				return nil, fmt.Errorf("rendering message %s: %w", msg.ID, err)
			}
			row.Content = template.HTML(buf.String())
		} else {
			row.Content = template.HTML(template.HTMLEscapeString(msg.Content))
		}
		data.Entries = append(data.Entries, row)
	}

	var out bytes.Buffer
	if err := e.tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("executing transcript template: %w", err)
	}
	return out.Bytes(), nil
}

func intentFromMetadata(metadata string) string {
	if metadata == "" || metadata == "{}" {
		return ""
	}
	var decoded struct {
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(metadata), &decoded); err != nil {
		return ""
	}
	return strings.TrimSpace(decoded.Intent)
}

const transcriptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Chat Transcript {{.SessionID}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
header { border-bottom: 1px solid #d1d9e0; padding-bottom: 1rem; margin-bottom: 1.5rem; }
.meta { color: #59636e; font-size: 0.9rem; }
.entry { margin-bottom: 1.25rem; }
.entry .who { font-weight: 600; }
.entry.user .who { color: #0969da; }
.entry.bot .who { color: #1a7f37; }
.intent { color: #59636e; font-size: 0.8rem; margin-left: 0.5rem; }
.content { margin-top: 0.25rem; }
pre { background: #f6f8fa; padding: 0.75rem; border-radius: 6px; overflow-x: auto; }
</style>
</head>
<body>
<header>
<h1>Chat Transcript</h1>
<p class="meta">Session {{.SessionID}} &middot; started {{.Started}}{{if .Page}} &middot; page {{.Page}}{{end}}</p>
</header>
{{range .Entries}}
<div class="entry {{.Sender}}">
<span class="who">{{.Sender}}</span><span class="meta"> at {{.When}}</span>{{if .Intent}}<span class="intent">[{{.Intent}}]</span>{{end}}
<div class="content">{{.Content}}</div>
</div>
{{end}}
</body>
</html>
`
