package protocol

import (
	"encoding/json"
	"fmt"
)

// Creates the documentation markdown string from the provided signature as
// rlox code and description as markdown.
func CreateDocMarkdownString(signature, desc string) string {
	if signature == "" {
		return desc
	}
	if desc == "" {
		return fmt.Sprintf("```rlox\n%s\n```", signature)
	}
	// The description may contain characters which need escaping in
	// generated markdown, such as quotes. Marshalling it gives us the
	// escaped form.
	encodedDesc, _ := json.Marshal(desc)
	return fmt.Sprintf("```rlox\n%s\n```\n---\n%s", signature, encodedDesc[1:len(encodedDesc)-1])
}
