package pages

import (
	"context"

	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
)

// Pages prints the paging-track layout for the configured span.
type Pages struct {
	Config store.Config
}

func (p *Pages) Do(_ context.Context) error {
	cfg := p.Config
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	pp := &printers.PrettyPrint{}
	pp.Pages(cfg.Span())
	return nil
}
