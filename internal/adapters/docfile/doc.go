// Package docfile hosts design documents stored as JSON, YAML or TOML files.
//
// A [Document] is decoded from a [File], validated, and exposed through the
// ports.Document, ports.Container and ports.TextNode interfaces. Styles are
// stored per character so disjoint ranges can be read and written
// independently; [Document.Export] coalesces them back into style runs.
//
// # File Layout
//
//	name: Landing
//	selection: ["1:2"]
//	nodes:
//	  - id: "1:1"
//	    type: FRAME
//	    children:
//	      - id: "1:2"
//	        type: TEXT
//	        characters: Hello
//	        styles:
//	          - {start: 0, end: 5, family: Inter, style: Bold, weight: 700, size: 16}
//
// Characters not covered by a style run use [DefaultFont], [DefaultWeight]
// and [DefaultSize].
package docfile
