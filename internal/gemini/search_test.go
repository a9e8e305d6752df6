package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildResponseEmpty(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{nil}},
		{Candidates: []*genai.Candidate{{}}},
	} {
		got := buildResponse(resp)
		if got.ResponseText != "" {
			t.Fatalf("text=%q, want empty", got.ResponseText)
		}
		if got.Citations != nil || got.WebSearchQueries != nil || got.GroundingSegments != nil {
			t.Fatalf("expected empty response, got %+v", got)
		}
	}
}

func TestBuildResponseConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "Hello, "}, nil, {Text: "world."}},
			},
		}},
	}

	got := buildResponse(resp)
	if got.ResponseText != "Hello, world." {
		t.Fatalf("text=%q, want %q", got.ResponseText, "Hello, world.")
	}
}

func TestBuildResponseCitationIndexSurvivesSkips(t *testing.T) {
	// Chunks without a URI are dropped but still hold their position:
	// Index must stay chunk position + 1.
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "x"}}},
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{URI: "https://a", Title: "A"}},
					{Web: &genai.GroundingChunkWeb{Title: "no uri"}},
					nil,
					{Web: &genai.GroundingChunkWeb{URI: "https://d", Title: "D"}},
				},
			},
		}},
	}

	got := buildResponse(resp)
	if len(got.Citations) != 2 {
		t.Fatalf("citations=%d, want 2", len(got.Citations))
	}
	if got.Citations[0].Index != 1 || got.Citations[0].URI != "https://a" {
		t.Fatalf("citation 0=%+v, want index 1 uri https://a", got.Citations[0])
	}
	if got.Citations[1].Index != 4 || got.Citations[1].URI != "https://d" {
		t.Fatalf("citation 1=%+v, want index 4 uri https://d", got.Citations[1])
	}
}

func TestBuildResponseRetrievedContextFallback(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{RetrievedContext: &genai.GroundingChunkRetrievedContext{URI: "https://r", Title: "R"}},
				},
			},
		}},
	}

	got := buildResponse(resp)
	if len(got.Citations) != 1 {
		t.Fatalf("citations=%d, want 1", len(got.Citations))
	}
	if got.Citations[0].URI != "https://r" || got.Citations[0].Title != "R" {
		t.Fatalf("citation=%+v, want uri https://r title R", got.Citations[0])
	}
}

func TestBuildResponseSegments(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				WebSearchQueries: []string{"euro 2024 winner"},
				GroundingSupports: []*genai.GroundingSupport{
					nil,
					{GroundingChunkIndices: []int32{0}}, // no segment: dropped
					{
						Segment:               &genai.Segment{StartIndex: 3, EndIndex: 9, Text: "middle"},
						GroundingChunkIndices: []int32{1, 0},
					},
				},
			},
		}},
	}

	got := buildResponse(resp)
	if len(got.WebSearchQueries) != 1 || got.WebSearchQueries[0] != "euro 2024 winner" {
		t.Fatalf("queries=%v", got.WebSearchQueries)
	}
	if len(got.GroundingSegments) != 1 {
		t.Fatalf("segments=%d, want 1", len(got.GroundingSegments))
	}
	seg := got.GroundingSegments[0]
	if seg.StartIndex != 3 || seg.EndIndex != 9 || seg.Text != "middle" {
		t.Fatalf("segment=%+v", seg)
	}
	if len(seg.ChunkIndices) != 2 || seg.ChunkIndices[0] != 1 || seg.ChunkIndices[1] != 0 {
		t.Fatalf("chunk indices=%v, want [1 0]", seg.ChunkIndices)
	}
}

func TestBuildResponseAbsentSegmentsStayNil(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingSupports: []*genai.GroundingSupport{
					{GroundingChunkIndices: []int32{0}},
				},
			},
		}},
	}

	got := buildResponse(resp)
	if got.GroundingSegments != nil {
		t.Fatalf("segments=%v, want nil", got.GroundingSegments)
	}
}
