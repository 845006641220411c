package gateway

import (
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/rithwika/career-advisor/internal/prompts"
	"github.com/rithwika/career-advisor/internal/types"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputText
	inputDocument
	inputSkills
)

// ProfileInput is the analysis input: free-form resume text, a binary
// document payload, or an explicit skill list. Exactly one case is set;
// prompt construction switches on the case, never on runtime inspection.
type ProfileInput struct {
	kind    inputKind
	text    string
	skills  []string
	docData []byte
	docMIME string
}

// ResumeText wraps free-form resume text as analysis input.
func ResumeText(text string) ProfileInput {
	return ProfileInput{kind: inputText, text: text}
}

// ResumeDocument wraps an uploaded document payload as analysis input.
// Data is the raw document bytes; the transport handles wire encoding.
func ResumeDocument(data []byte, mimeType string) ProfileInput {
	return ProfileInput{kind: inputDocument, docData: data, docMIME: mimeType}
}

// SkillList wraps an explicit skill list as analysis input.
// The list is normalized (trimmed, de-duplicated) on construction.
func SkillList(skills []string) ProfileInput {
	return ProfileInput{kind: inputSkills, skills: types.NormalizeSkills(skills)}
}

// empty reports whether the input carries no analyzable content.
func (in ProfileInput) empty() bool {
	switch in.kind {
	case inputText:
		return strings.TrimSpace(in.text) == ""
	case inputDocument:
		return len(in.docData) == 0
	case inputSkills:
		return len(in.skills) == 0
	default:
		return true
	}
}

// description names the input variant inside the instruction prompt.
func (in ProfileInput) description() string {
	if in.kind == inputSkills {
		return "a list of skills"
	}
	return "a resume document"
}

// parts assembles the request parts: the instruction prompt followed by
// the input payload in its variant-specific form.
func (in ProfileInput) parts(prompt string) []genai.Part {
	parts := []genai.Part{genai.Text(prompt)}

	switch in.kind {
	case inputSkills:
		skillsText := prompts.Format(
			prompts.MustGet("advisor.json", "skill-list"),
			map[string]string{"Skills": strings.Join(in.skills, ", ")},
		)
		parts = append(parts, genai.Text(skillsText))
	case inputText:
		parts = append(parts, genai.Text(in.text))
	case inputDocument:
		parts = append(parts, genai.Blob{MIMEType: in.docMIME, Data: in.docData})
	}

	return parts
}
