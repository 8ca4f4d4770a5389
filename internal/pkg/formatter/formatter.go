package formatter

import (
	"fmt"

	"github.com/ideasage/backend/internal/entity"
)

// Report is a rendered analysis ready for export: a document title and
// the seven assessment sections in canonical order.
type Report struct {
	Title    string
	Sections []Section
}

type Section struct {
	Heading string
	Body    string
}

type Formatter interface {
	Format(report *Report) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ReportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownFormat, format)
	}
}
