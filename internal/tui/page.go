package tui

import (
	"sync"

	"github.com/joshdurbin/url-shortener-client/internal/qr"
)

// page is the shared state behind both screens. Controllers write to it from
// command goroutines and the feedback timer; View reads it under the lock.
type page struct {
	mu sync.Mutex

	focused   bool
	loading   bool
	errMsg    string
	shortURL  string
	selected  bool
	copied    bool
	qrImage   *qr.Image
	qrCaption string
	qrFailure string

	// notify asks the program for a redraw; it must not block
	notify func()
}

// snapshot is a copy of page taken for rendering
type snapshot struct {
	focused   bool
	loading   bool
	errMsg    string
	shortURL  string
	selected  bool
	copied    bool
	qrImage   *qr.Image
	qrCaption string
	qrFailure string
}

func (p *page) snapshot() snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return snapshot{
		focused:   p.focused,
		loading:   p.loading,
		errMsg:    p.errMsg,
		shortURL:  p.shortURL,
		selected:  p.selected,
		copied:    p.copied,
		qrImage:   p.qrImage,
		qrCaption: p.qrCaption,
		qrFailure: p.qrFailure,
	}
}

func (p *page) update(f func()) {
	p.mu.Lock()
	f()
	notify := p.notify
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (p *page) Focus() {
	p.update(func() { p.focused = true })
}

func (p *page) SetLoading(loading bool) {
	p.update(func() { p.loading = loading })
}

func (p *page) ShowError(message string) {
	p.update(func() { p.errMsg = message })
}

func (p *page) HideError() {
	p.update(func() { p.errMsg = "" })
}

func (p *page) ShowResult(shortURL string) {
	p.update(func() {
		p.shortURL = shortURL
		p.selected = false
	})
}

func (p *page) ShortURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shortURL
}

func (p *page) SelectAll() {
	p.update(func() { p.selected = true })
}

func (p *page) SetCopied(copied bool) {
	p.update(func() { p.copied = copied })
}

func (p *page) ShowQR(img *qr.Image, caption string) {
	p.update(func() {
		p.qrImage = img
		p.qrCaption = caption
		p.qrFailure = ""
	})
}

func (p *page) ShowQRFailure(message string) {
	p.update(func() {
		p.qrImage = nil
		p.qrFailure = message
	})
}
