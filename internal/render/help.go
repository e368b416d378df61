package render

import (
	"fmt"
	"io"
)

// RenderHelp prints the companion usage guide.
func RenderHelp(writer io.Writer) {
	fmt.Fprintln(writer, HeaderStyle.Render("Learning Companion"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "Analyze notebook code and get a concept explanation plus hands-on")
	fmt.Fprintln(writer, "experiments to try, generated by an AI tutor.")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, SectionStyle.Render("Analyzing a stored notebook"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  nbtutor [cellIndex] [notebook.ipynb]")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  Explains the given cell and suggests experiments, using up to the")
	fmt.Fprintln(writer, "  last 3 preceding code cells as context.")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, SectionStyle.Render("Analyzing a snippet directly"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  nbtutor -code \"total = sum(scores) / len(scores)\"")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  Explains any code you paste, no notebook or session required.")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, SectionStyle.Render("Learning as you go"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  Hook your session so each executed cell is recorded:")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "    nbtutor -record \"x = 1\"")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  Then, right after running some code, ask about it:")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "    nbtutor -live")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  The companion explains the cell that ran immediately before, so")
	fmt.Fprintln(writer, "  invoke it in the very next cell. Re-running earlier cells out of")
	fmt.Fprintln(writer, "  order still advances the execution counter.")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, SectionStyle.Render("Other commands"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "  nbtutor -history    show recorded executions")
	fmt.Fprintln(writer, "  nbtutor -reset      clear the recorded execution history")
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, DimStyle.Render("Config: ~/.nbtutor/config.yaml (model, baseURL, logLevel)."))
	fmt.Fprintln(writer, DimStyle.Render("Credential: OPENAI_API_KEY environment variable."))
}
