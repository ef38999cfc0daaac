package figure

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

func init() {
	// no pdfcpu config directory under $HOME
	model.ConfigPath = "disable"
}

// VerifyPDF re-reads a written report and checks it holds one page per
// frame.
func VerifyPDF(rs io.ReadSeeker, wantPages int) error {
	ctx, err := pdfcpu.Read(rs, model.NewDefaultConfiguration())
	if err != nil {
		return errors.Wrap(err, "read pdf")
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return errors.Wrap(err, "page count")
	}
	if ctx.PageCount != wantPages {
		return errors.Errorf("report has %d pages, want %d", ctx.PageCount, wantPages)
	}
	return nil
}
