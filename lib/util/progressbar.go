package util

import (
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// Create a new transfer progress bar attached to p.
func NewTransferBar(p *mpb.Progress, count int64, name string) *mpb.Bar {
	return p.New(count,
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 2, C: decor.DidentRight}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncSpace),
		),
	)
}
