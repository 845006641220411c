package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models occasionally wrap JSON in ```json ... ``` blocks even when the
// response MIME type is set to JSON.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
