// Package picks injects product pick blocks beneath level-3 headings of a
// goldmark document.
//
// The package has two passes over the top-level nodes of one document:
//   - matching: level-3 heading text is normalized and joined against the
//     product records found in the document metadata
//   - building: each matched heading receives a rating line, an opening
//     wrapper, its original first paragraph, a call-to-action row and a
//     closing wrapper
//
// Product records are untrusted: every string that reaches the generated
// markup is escaped. Nothing in this package fails; missing or malformed
// metadata leaves the document unchanged, and unusable ratings render the
// pending state.
//
// The generated CSS class names (pick, pick-row, pick-tile, pick-body,
// pick-cta-row, pick-cta, pick-rating, pick-rating--pending) are part of the
// output contract.
package picks
