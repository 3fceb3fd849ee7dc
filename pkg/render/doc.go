// Package render turns normalized tweets into embeddable output: a full
// standalone HTML document or a self-contained SVG card. All layout in
// the SVG path is computed with a fixed character-width heuristic, no
// font metrics are consulted.
package render
