package controller

import "github.com/joshdurbin/url-shortener-client/internal/metrics"

// Deps bundles the capabilities a front-end hands to its controllers
type Deps struct {
	Shortener Shortener
	Encoder   QREncoder
	Clipboard ClipboardWriter
	Legacy    LegacyCopier
	Metrics   *metrics.Metrics
}
