package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

type jsonCitation struct {
	Index int    `json:"index"`
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type jsonSegment struct {
	StartIndex int32  `json:"start_index"`
	EndIndex   int32  `json:"end_index"`
	Text       string `json:"text"`
}

type jsonSupport struct {
	Segment               jsonSegment `json:"segment"`
	GroundingChunkIndices []int32     `json:"grounding_chunk_indices"`
}

type jsonGroundingMetadata struct {
	WebSearchQueries  []string       `json:"web_search_queries,omitempty"`
	GroundingChunks   []jsonCitation `json:"grounding_chunks,omitempty"`
	GroundingSupports []jsonSupport  `json:"grounding_supports,omitempty"`
}

type jsonOutput struct {
	ResponseText      string                 `json:"response_text"`
	Citations         []jsonCitation         `json:"citations,omitempty"`
	GroundingMetadata *jsonGroundingMetadata `json:"grounding_metadata,omitempty"`
}

// FormatJSON renders the response as indented JSON. The grounding_metadata
// object appears only when includeMetadata is set and at least one of its
// fields is non-empty.
func FormatJSON(resp *SearchResponse, includeMetadata bool) (string, error) {
	out := jsonOutput{ResponseText: resp.ResponseText}
	for _, c := range resp.Citations {
		out.Citations = append(out.Citations, jsonCitation{Index: c.Index, URI: c.URI, Title: c.Title})
	}

	if includeMetadata {
		md := &jsonGroundingMetadata{WebSearchQueries: resp.WebSearchQueries}
		md.GroundingChunks = out.Citations
		for _, seg := range resp.GroundingSegments {
			md.GroundingSupports = append(md.GroundingSupports, jsonSupport{
				Segment: jsonSegment{
					StartIndex: seg.StartIndex,
					EndIndex:   seg.EndIndex,
					Text:       seg.Text,
				},
				GroundingChunkIndices: seg.ChunkIndices,
			})
		}
		if len(md.WebSearchQueries) > 0 || len(md.GroundingChunks) > 0 || len(md.GroundingSupports) > 0 {
			out.GroundingMetadata = md
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}

// FormatMarkdown renders the response text followed by a citation list.
func FormatMarkdown(resp *SearchResponse) string {
	var b strings.Builder
	b.WriteString(resp.ResponseText)
	b.WriteString("\n")

	if len(resp.Citations) > 0 {
		b.WriteString("\n## Citations\n\n")
		for _, c := range resp.Citations {
			label := c.Title
			if label == "" {
				label = c.URI
			}
			fmt.Fprintf(&b, "%d. [%s](%s)\n", c.Index, label, c.URI)
		}
	}
	return b.String()
}
