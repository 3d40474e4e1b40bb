// Package web renders the assistant page.
package web

import (
	"qarks-assistant/internal/assistant"
	"qarks-assistant/internal/knowledge"
	"qarks-assistant/internal/notice"
	"qarks-assistant/internal/prompt"
)

const (
	Title          = "Asistente para Qarks, una App de Educación Ambiental"
	EmptyQuestion  = "Por favor, escribe una pregunta."
	PrototypeNotes = "Este es un prototipo. El despliegue real requiere configurar tus credenciales de la base de documentos y de la API generativa de forma segura."
)

// Entry is one sidebar document.
type Entry struct {
	ID    string
	Label string
	Text  string
}

// Panel is a generated section: the response text plus any notices raised
// while producing it.
type Panel struct {
	Text    string
	Notices []notice.Notice
}

// Page is the view model for a single render.
type Page struct {
	Title    string
	Notices  []notice.Notice
	Entries  []Entry
	Summary  *Panel
	Question string
	// QuestionNotices holds warnings about the submitted question itself.
	QuestionNotices []notice.Notice
	Answer          *Panel
	Footer          string
}

// NewPage builds the static parts of the page: title, bootstrap notices,
// sidebar, default question.
func NewPage(kb knowledge.Base, bootstrap []notice.Notice) Page {
	docs := kb.Documents()
	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, Entry{ID: d.ID, Label: knowledge.Label(d.ID), Text: d.Text})
	}
	notices := make([]notice.Notice, len(bootstrap))
	copy(notices, bootstrap)
	return Page{
		Title:    Title,
		Notices:  notices,
		Entries:  entries,
		Question: prompt.DefaultQuestion,
		Footer:   PrototypeNotes,
	}
}

// SetSummary fills the summary panel from a generation result.
func (p *Page) SetSummary(res assistant.Result) {
	p.Summary = panelFrom(res)
}

// SetAnswer fills the answer panel from a generation result.
func (p *Page) SetAnswer(res assistant.Result) {
	p.Answer = panelFrom(res)
}

// WarnEmptyQuestion records that an empty question was submitted.
func (p *Page) WarnEmptyQuestion() {
	p.QuestionNotices = append(p.QuestionNotices, notice.Warning(EmptyQuestion))
}

func panelFrom(res assistant.Result) *Panel {
	panel := &Panel{Text: res.Text}
	if res.Notice != nil {
		panel.Notices = []notice.Notice{*res.Notice}
	}
	return panel
}
