package indexer

import "github.com/docforge/sveltedocs"

// Source is one documentation distribution endpoint.
type Source struct {
	Package sveltedocs.Package
	Variant sveltedocs.Variant
	URL     string

	// Mandatory sources must produce at least one content unit; an empty
	// or unreachable mandatory source aborts initialization.
	Mandatory bool
}

// docsHost serves every documentation distribution.
const docsHost = "https://svelte.dev"

// DefaultSources returns the full set of documentation endpoints. The
// per-package svelte and kit documents are mandatory; everything else is
// skipped silently when empty.
func DefaultSources() []Source {
	return []Source{
		{Package: sveltedocs.PackageSvelte, URL: docsHost + "/docs/svelte/llms.txt", Mandatory: true},
		{Package: sveltedocs.PackageKit, URL: docsHost + "/docs/kit/llms.txt", Mandatory: true},
		{Package: sveltedocs.PackageCLI, URL: docsHost + "/docs/cli/llms.txt"},
		{Variant: sveltedocs.VariantFull, URL: docsHost + "/llms-full.txt"},
		{Variant: sveltedocs.VariantSmall, URL: docsHost + "/llms-small.txt"},
	}
}

// SourcesForPackage filters the default sources to one package.
func SourcesForPackage(pkg sveltedocs.Package) []Source {
	var out []Source
	for _, s := range DefaultSources() {
		if s.Package == pkg {
			out = append(out, s)
		}
	}
	return out
}
