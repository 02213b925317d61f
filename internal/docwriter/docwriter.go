// Package docwriter renders a cleaned transcript as a styled .docx document.
package docwriter

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

var reSpeakerLabel = regexp.MustCompile(`^([A-Za-z][A-Za-z\s\.]*?:)\s*(.*)$`)

// Write renders the cleaned transcript to outputPath. Speaker labels at the
// start of a line are set in bold; blank lines become paragraph breaks.
func Write(title, transcript, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	titleRun := doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000")
	titleRun.Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(transcript, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			doc.AddParagraph("")
			continue
		}
		addLine(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func addLine(p *docx.Paragraph, line string) {
	if m := reSpeakerLabel.FindStringSubmatch(line); m != nil {
		label := p.AddText(m[1] + " ").Font(fontName).Size(fontSize).Color("000000")
		label.Bold(true)
		if m[2] != "" {
			p.AddText(m[2]).Font(fontName).Size(fontSize).Color("000000")
		}
		return
	}
	p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
}
