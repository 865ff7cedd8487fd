package controller

import (
	"sync"

	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// fakePage records what the controllers do to the page regions
type fakePage struct {
	mu sync.Mutex

	focused       bool
	loading       bool
	loadingCalls  []bool
	errorVisible  bool
	errorText     string
	formVisible   bool
	resultVisible bool
	shortURL      string
	selected      bool
	copied        bool
	qrImage       *qr.Image
	qrCaption     string
	qrFailure     string
}

func newFakePage() *fakePage {
	return &fakePage{formVisible: true}
}

func (p *fakePage) Focus() {
	p.focused = true
}

func (p *fakePage) SetLoading(loading bool) {
	p.loadingCalls = append(p.loadingCalls, loading)
	p.loading = loading
}

func (p *fakePage) ShowError(message string) {
	p.errorText = message
	p.errorVisible = true
}

func (p *fakePage) HideError() {
	p.errorVisible = false
}

func (p *fakePage) ShowResult(shortURL string) {
	p.shortURL = shortURL
	p.formVisible = false
	p.resultVisible = true
}

func (p *fakePage) ShortURL() string {
	return p.shortURL
}

func (p *fakePage) SelectAll() {
	p.selected = true
}

func (p *fakePage) SetCopied(copied bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.copied = copied
}

func (p *fakePage) Copied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.copied
}

func (p *fakePage) ShowQR(img *qr.Image, caption string) {
	p.qrImage = img
	p.qrCaption = caption
}

func (p *fakePage) ShowQRFailure(message string) {
	p.qrFailure = message
}
