package teaching

import (
	"fmt"
	"strings"
)

// PromptKind selects which pedagogical artifact a prompt asks for.
type PromptKind string

const (
	PromptExplanation PromptKind = "explanation"
	PromptExperiments PromptKind = "experiments"
)

// PromptRequest is an immutable value pairing a subject code fragment with
// the context window it should be explained against.
type PromptRequest struct {
	Kind    PromptKind
	Subject string
	Context ContextWindow
}

// Compose builds a PromptRequest. Composition is purely textual: the subject
// is passed through unvalidated, and malformed code is left for the
// generation step to degrade on gracefully.
func Compose(kind PromptKind, subject string, window ContextWindow) PromptRequest {
	return PromptRequest{
		Kind:    kind,
		Subject: subject,
		Context: window,
	}
}

// Render produces the final prompt text handed to the generation client.
// It is a pure function of the request: identical requests render to
// byte-identical text.
func Render(request PromptRequest) string {
	switch request.Kind {
	case PromptExperiments:
		return renderExperiments(request)
	default:
		return renderExplanation(request)
	}
}

func renderExplanation(request PromptRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a patient, expert programming tutor helping a student understand code from an interactive notebook session.\n\n")

	if !request.Context.Empty() {
		sb.WriteString(renderContext(request.Context))
		sb.WriteString("\n")
	}

	sb.WriteString("Current code:\n```python\n")
	sb.WriteString(request.Subject)
	sb.WriteString("\n```\n\n")

	sb.WriteString(`Please explain this code by covering:
1. **What it does**: A clear, simple explanation of what this code accomplishes
2. **Key concepts**: The important programming or AI concepts being demonstrated
3. **Why it matters**: How this fits into the bigger picture of learning about AI agents
4. **Connection**: How this builds on or relates to previous cells

Keep your explanation clear, concise, and encouraging. Use analogies when helpful.
Format your response in markdown.
`)

	return sb.String()
}

func renderExperiments(request PromptRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a creative programming tutor who believes students learn best by experimenting.\n\n")

	if !request.Context.Empty() {
		sb.WriteString(renderContext(request.Context))
		sb.WriteString("\n")
	}

	sb.WriteString("Here's a code cell from an interactive notebook session:\n\n```python\n")
	sb.WriteString(request.Subject)
	sb.WriteString("\n```\n\n")

	sb.WriteString(`Please suggest 3-5 specific experiments the student can try to deepen their understanding. For each experiment:
1. Describe what to modify in the code
2. Predict what will happen
3. Explain what concept this experiment demonstrates

Make the experiments progressively more challenging:
- Start with simple modifications (change a value, remove a parameter)
- Progress to more complex changes (restructure code, add features)

Format each experiment like this:

### Experiment N: [Catchy title]
**What to do:** [Specific code change]
**Prediction:** [What will happen]
**Why it matters:** [What concept this teaches]
**Code snippet:**
` + "```python\n[Modified code]\n```" + `

Be specific with code examples. Format your response in markdown.
`)

	return sb.String()
}

// renderContext embeds the context window verbatim, each snippet introduced
// by its position marker.
func renderContext(window ContextWindow) string {
	var sb strings.Builder

	sb.WriteString("Previous cells executed:\n")
	for _, snippet := range window.Snippets {
		text := snippet.Text
		if snippet.Truncated {
			text += TruncationMarker
		}
		sb.WriteString(fmt.Sprintf("Cell %d: %s\n", snippet.Position, text))
	}

	return sb.String()
}
