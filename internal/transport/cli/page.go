package cli

import (
	"fmt"
	"io"

	"github.com/joshdurbin/url-shortener-client/internal/i18n"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// page renders the input and result pages as lines on a terminal
type page struct {
	out     io.Writer
	errOut  io.Writer
	invert  bool
	printQR bool

	loading  bool
	shortURL string
	qrImage  *qr.Image
}

// newPage creates a page; printQR selects whether ShowQR draws on out
func newPage(out, errOut io.Writer, invert, printQR bool) *page {
	return &page{
		out:     out,
		errOut:  errOut,
		invert:  invert,
		printQR: printQR,
	}
}

// Focus is a no-op: the URL comes from the command line
func (p *page) Focus() {}

func (p *page) SetLoading(loading bool) {
	if p.loading == loading {
		return
	}
	p.loading = loading
	if loading {
		fmt.Fprintln(p.errOut, i18n.T("submit.loading"))
	}
}

func (p *page) ShowError(message string) {
	fmt.Fprintf(p.errOut, "%s\n", message)
}

func (p *page) HideError() {}

func (p *page) ShowResult(shortURL string) {
	p.shortURL = shortURL
	fmt.Fprintf(p.out, "%s: %s\n", i18n.T("result.short_url"), shortURL)
}

func (p *page) ShortURL() string {
	return p.shortURL
}

// SelectAll is a no-op: there is no editable field to select
func (p *page) SelectAll() {}

func (p *page) SetCopied(copied bool) {
	if copied {
		fmt.Fprintln(p.errOut, i18n.T("copy.copied"))
	}
}

func (p *page) ShowQR(img *qr.Image, caption string) {
	p.qrImage = img
	if !p.printQR {
		return
	}
	fmt.Fprintf(p.out, "\n%s%s\n", img.Text(p.invert), caption)
}

func (p *page) ShowQRFailure(message string) {
	fmt.Fprintln(p.errOut, message)
}
