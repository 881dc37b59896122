// Package mdpicks renders Markdown posts to HTML and injects product pick
// blocks under level-3 headings that name a product listed in the post's
// frontmatter.
//
// # Quick Start
//
//	conv, err := mdpicks.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdpicks.Input{
//	    Markdown: content, // may start with a YAML frontmatter block
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("post.html", result.HTML, 0644)
//
// # Frontmatter
//
// Products are read from the first list-valued field among products, picks
// and items:
//
//	---
//	title: Rainy day gear
//	products:
//	  - title: Cozy Rain Jacket
//	    url: https://example.com/jacket
//	    rating: 4.6
//	    review_count: 12418
//	---
//
//	### Cozy Rain Jacket
//
//	Warm, packable and dry.
//
// Every level-3 heading whose text matches a product title (ignoring case,
// spacing, quotes and punctuation) gets a rating line and a pick card that
// wraps the paragraph under the heading and ends with a call-to-action
// link. Products without a url link to a marketplace search instead.
//
// # Conversion Pipeline
//
//  1. Frontmatter split and YAML decoding
//  2. Markdown preprocessing (line endings, blank lines)
//  3. Markdown to HTML via goldmark (GFM, footnotes, highlighting, picks)
//  4. Document wrapping and CSS injection (skipped for fragments)
//  5. Optional audit of the rendered pick markup
//
// # Configuration
//
//	conv, err := mdpicks.NewConverter(
//	    mdpicks.WithStyle("minimal"),
//	    mdpicks.WithAssetPath("/path/to/theme"),
//	    mdpicks.WithAudit(true),
//	    mdpicks.WithLogger(slog.Default()),
//	)
//
// # goldmark Integration
//
// Callers running their own goldmark instance register Extension and pass
// metadata through the parser context:
//
//	md := goldmark.New(goldmark.WithExtensions(mdpicks.Extension))
//	pc := parser.NewContext()
//	mdpicks.WithMetadata(pc, meta)
//	err := md.Convert(src, &buf, parser.WithContext(pc))
//	picks := mdpicks.PicksFrom(pc)
//
// # Parallel Processing
//
// A Converter is safe for concurrent use. ConverterPool bounds the number of
// converters handed out to batch workers.
package mdpicks
