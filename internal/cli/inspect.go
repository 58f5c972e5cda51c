package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/easytest/internal/presentation/tui"
	"github.com/aretw0/easytest/pkg/looks"
)

// InspectOptions configures Inspect.
type InspectOptions struct {
	Target string
	Out    io.Writer
	// Render styles the table with glamour instead of printing markdown.
	Render bool
}

// Inspect prints the top-level properties of a document with their type
// tags, as a markdown table.
func Inspect(opts InspectOptions) error {
	doc, err := LoadDocument(opts.Target)
	if err != nil {
		return err
	}

	md := PropertyTable(doc)
	if opts.Render {
		render, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		if md, err = render(md); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	_, err = io.WriteString(opts.Out, md)
	return err
}

// PropertyTable builds the markdown table Inspect prints.
func PropertyTable(doc *Document) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", doc.Path)
	if len(doc.Properties) == 0 {
		fmt.Fprintf(&sb, "Document is %s and has no properties.\n", looks.TypeOf(doc.Value))
		return sb.String()
	}

	sb.WriteString("| Property | Type |\n")
	sb.WriteString("|---|---|\n")
	for _, p := range doc.Properties {
		fmt.Fprintf(&sb, "| %s | %s |\n", p.Name, looks.TypeOf(p.Value))
	}
	return sb.String()
}
