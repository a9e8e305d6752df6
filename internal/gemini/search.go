package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Citation is a single attributed web source. Index is 1-based and matches
// the position of the source chunk in the service's reply, so a segment's
// 0-based ChunkIndices map to it via +1 even when chunks without a URI were
// dropped.
type Citation struct {
	Index int
	URI   string
	Title string
}

// GroundingSegment is a span of the response text supported by one or more
// source chunks. Offsets are byte indices into the response text as it was
// returned; they go stale if the text is rewritten.
type GroundingSegment struct {
	StartIndex   int32
	EndIndex     int32
	Text         string
	ChunkIndices []int32
}

// SearchResponse is a grounded answer. WebSearchQueries and
// GroundingSegments are nil when the service returned none; callers use
// that to decide whether citation splicing is possible.
type SearchResponse struct {
	ResponseText      string
	Citations         []Citation
	WebSearchQueries  []string
	GroundingSegments []GroundingSegment
}

// Query issues a single generation request with the Google Search tool
// enabled. Any failure from the SDK is wrapped; the raw error type never
// crosses this boundary.
func (c *Client) Query(ctx context.Context, prompt, model string) (*SearchResponse, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	out := buildResponse(resp)
	c.log.Debug().
		Int("citations", len(out.Citations)).
		Int("segments", len(out.GroundingSegments)).
		Strs("queries", out.WebSearchQueries).
		Msg("grounded response parsed")
	return out, nil
}

// buildResponse flattens the SDK reply into a SearchResponse. Missing
// candidates, content, or metadata yield empty fields, never errors.
func buildResponse(resp *genai.GenerateContentResponse) *SearchResponse {
	out := &SearchResponse{}
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}
	cand := resp.Candidates[0]
	if cand == nil {
		return out
	}

	if cand.Content != nil {
		var b strings.Builder
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		out.ResponseText = b.String()
	}

	md := cand.GroundingMetadata
	if md == nil {
		return out
	}

	for i, chunk := range md.GroundingChunks {
		if chunk == nil {
			continue
		}
		var uri, title string
		if chunk.Web != nil {
			uri = chunk.Web.URI
			title = chunk.Web.Title
		} else if chunk.RetrievedContext != nil {
			uri = chunk.RetrievedContext.URI
			title = chunk.RetrievedContext.Title
		}
		if uri == "" {
			// Skipped chunks still consume their position: Index stays i+1.
			continue
		}
		out.Citations = append(out.Citations, Citation{Index: i + 1, URI: uri, Title: title})
	}

	if len(md.WebSearchQueries) > 0 {
		out.WebSearchQueries = md.WebSearchQueries
	}

	for _, support := range md.GroundingSupports {
		if support == nil || support.Segment == nil {
			continue
		}
		out.GroundingSegments = append(out.GroundingSegments, GroundingSegment{
			StartIndex:   support.Segment.StartIndex,
			EndIndex:     support.Segment.EndIndex,
			Text:         support.Segment.Text,
			ChunkIndices: support.GroundingChunkIndices,
		})
	}

	return out
}
