// Package prompt composes the text prompts sent to the generative client.
package prompt

import (
	"strings"

	"qarks-assistant/internal/knowledge"
)

const documentSeparator = "\n\n"

const summaryInstruction = `Actúa como un analista de proyectos de tecnología y sostenibilidad.
Basado en los siguientes documentos sobre una aplicación de educación ambiental,
genera un resumen conciso y coherente que sirva como una introducción ejecutiva.`

const questionInstruction = `Basado en los siguientes documentos sobre una aplicación de educación ambiental,
responde a la siguiente pregunta del usuario de manera clara y concisa.`

// DefaultQuestion pre-fills the question box.
const DefaultQuestion = "¿Cuáles son las principales metodologías de investigación mencionadas en los documentos?"

// Summary asks for an executive summary of every document in kb.
func Summary(kb knowledge.Base) string {
	var b strings.Builder
	b.WriteString(summaryInstruction)
	b.WriteString("\n\nDocumentos:\n")
	b.WriteString(joinDocuments(kb))
	b.WriteString("\n")
	return b.String()
}

// Question asks the model to answer question using every document in kb as
// context. The question is embedded verbatim.
func Question(kb knowledge.Base, question string) string {
	var b strings.Builder
	b.WriteString(questionInstruction)
	b.WriteString("\n\nDocumentos:\n")
	b.WriteString(joinDocuments(kb))
	b.WriteString("\n\nPregunta del usuario: ")
	b.WriteString(question)
	b.WriteString("\n\nRespuesta:\n")
	return b.String()
}

func joinDocuments(kb knowledge.Base) string {
	return strings.Join(kb.Texts(), documentSeparator)
}
