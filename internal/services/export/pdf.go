package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ternarybob/boardbridge/internal/models"
)

// DeckPDF renders a deck as a PDF. The markdown rendering is the source of
// truth; the PDF is produced by walking its parsed AST.
func (s *Service) DeckPDF(deck *models.Deck) ([]byte, error) {
	markdown := s.DeckMarkdown(deck)

	s.logger.Debug().
		Str("deck_id", deck.ID).
		Int("markdown_len", len(markdown)).
		Msg("Converting deck to PDF")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	pdf.SetTitle(deck.BoardName, true)

	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	renderer := &pdfRenderer{
		pdf:       pdf,
		source:    source,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		font:      "Arial",
		size:      10,
	}

	if err := ast.Walk(doc, renderer.walk); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render PDF")
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate PDF output")
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	s.logger.Debug().Int("pdf_size", buf.Len()).Msg("PDF generated successfully")
	return buf.Bytes(), nil
}

type pdfRenderer struct {
	pdf       *fpdf.Fpdf
	source    []byte
	translate func(string) string
	font      string
	size      float64
	bold      bool
	italic    bool
	inList    bool
}

func (r *pdfRenderer) updateFont() {
	style := ""
	if r.bold {
		style += "B"
	}
	if r.italic {
		style += "I"
	}
	r.pdf.SetFont(r.font, style, r.size)
}

func (r *pdfRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindHeading:
		return r.handleHeading(n.(*ast.Heading), entering)
	case ast.KindParagraph:
		if !entering {
			r.pdf.Ln(7)
		}
	case ast.KindText:
		if entering {
			r.pdf.Write(5, r.translate(string(n.Text(r.source))))
		}
	case ast.KindEmphasis:
		if n.(*ast.Emphasis).Level == 2 {
			r.bold = entering
		} else {
			r.italic = entering
		}
		r.updateFont()
	case ast.KindList:
		r.inList = entering
		if !entering {
			r.pdf.Ln(3)
		}
	case ast.KindListItem:
		if entering {
			r.pdf.Write(5, r.translate("• "))
		} else {
			r.pdf.Ln(6)
		}
	case ast.KindThematicBreak:
		if entering {
			r.pdf.Ln(2)
			r.pdf.Line(15, r.pdf.GetY(), 195, r.pdf.GetY())
			r.pdf.Ln(2)
		}
	}
	return ast.WalkContinue, nil
}

func (r *pdfRenderer) handleHeading(n *ast.Heading, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.pdf.Ln(4)
		size := 15.0
		switch n.Level {
		case 1:
			size = 15
		case 2:
			size = 12
		default:
			size = 11
		}
		r.pdf.SetFont(r.font, "B", size)
	} else {
		r.pdf.Ln(8)
		r.updateFont()
	}
	return ast.WalkContinue, nil
}
