package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resumeforge/internal/domain/resume"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/exp/slog"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// Renderer превращает запись резюме в HTML-документ выбранного макета.
// Рендеринг чистый: запись не изменяется.
type Renderer struct {
	tmpl *template.Template
	log  *slog.Logger
}

func NewRenderer(log *slog.Logger) (*Renderer, error) {
	// В свободном тексте разрешены только переводы строк, всё остальное
	// экранируется перед вставкой в макет.
	policy := bluemonday.NewPolicy()
	policy.AllowElements("br")

	funcs := template.FuncMap{
		"multiline": multiline(policy),
		"imgsrc":    imgsrc,
	}

	tmpl, err := template.New("resume").Funcs(funcs).ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		tmpl: tmpl,
		log:  log.With("component", "template_renderer"),
	}, nil
}

// Render возвращает HTML выбранного макета для записи.
func (r *Renderer) Render(rec resume.Record, v Variant) (string, error) {
	parsed, err := ParseVariant(string(v))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, string(parsed)+".gohtml", rec); err != nil {
		r.log.Error("failed to render template", "variant", v, "error", err)
		return "", fmt.Errorf("render %s: %w", v, err)
	}
	return buf.String(), nil
}

// imgsrc пропускает в src только data URI изображений. Контекстное
// экранирование html/template иначе вырезает схему data:.
func imgsrc(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return ""
}

// multiline экранирует свободный текст и превращает переводы строк в <br>,
// после чего прогоняет результат через санитайзер.
func multiline(policy *bluemonday.Policy) func(string) template.HTML {
	return func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
		return template.HTML(policy.Sanitize(escaped))
	}
}
