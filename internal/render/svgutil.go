package render

import "bytes"

// sanitizeSVG normalises style declarations some piece sets ship with that oksvg cannot parse.
func sanitizeSVG(svg []byte) []byte {
	fixed := bytes.ReplaceAll(svg, []byte("fill:000000"), []byte("fill:#000000"))
	fixed = bytes.ReplaceAll(fixed, []byte("fill: 000000"), []byte("fill:#000000"))
	fixed = bytes.ReplaceAll(fixed, []byte("stroke: 000000"), []byte("stroke:#000000"))
	fixed = bytes.ReplaceAll(fixed, []byte("fill: #"), []byte("fill:#"))
	fixed = bytes.ReplaceAll(fixed, []byte("stroke: #"), []byte("stroke:#"))
	return fixed
}
