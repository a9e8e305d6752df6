package gemini

import (
	"fmt"
	"sort"
	"strings"
)

// AddInlineCitations inserts citation markers like [1](uri1), [2](uri2)
// into text at segment boundaries. Pure: nil or empty segments, or an
// empty citation roster, return text unchanged.
func AddInlineCitations(text string, segments []GroundingSegment, citations []Citation) string {
	if len(segments) == 0 || len(citations) == 0 {
		return text
	}

	uris := make(map[int]string, len(citations))
	for _, c := range citations {
		uris[c.Index] = c.URI
	}

	// Insert from the highest EndIndex down so earlier offsets stay valid.
	// The sort must be stable: ties keep their given order.
	sorted := make([]GroundingSegment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndIndex > sorted[j].EndIndex
	})

	for _, seg := range sorted {
		if len(seg.ChunkIndices) == 0 {
			continue
		}

		var links []string
		for _, chunkIdx := range seg.ChunkIndices {
			// chunk indices are 0-based, citation indices 1-based
			citationIdx := int(chunkIdx) + 1
			if uri, ok := uris[citationIdx]; ok {
				links = append(links, fmt.Sprintf("[%d](%s)", citationIdx, uri))
			}
		}
		if len(links) == 0 {
			continue
		}

		group := strings.Join(links, ", ")
		end := int(seg.EndIndex)
		if end > len(text) {
			end = len(text)
		}
		if end < 0 {
			end = 0
		}
		text = text[:end] + group + text[end:]
	}

	return text
}
