package sveltedocs

// Converter converts HTML to Markdown. The indexer uses it when a
// documentation source serves HTML instead of the expected markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
