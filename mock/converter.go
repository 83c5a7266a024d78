package mock

import "github.com/docforge/sveltedocs"

var _ sveltedocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of sveltedocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
