package connection

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// DetectionResult holds the outcome of sampling a file for its layout.
type DetectionResult struct {
	Layout       Layout
	Confidence   float64 // 0.0 to 1.0 (share of sampled lines that fit)
	SampledLines int
	MatchedLines int
}

const defaultSampleSize = 100

// DetectLayout samples up to sampleSize lines from a connection log and
// decides which of the two static layouts it uses. An 8-token line whose
// last token looks like a connection GUID votes for the connections
// layout; anything with 7 or more tokens otherwise votes for incoming
// (surplus tokens are a multi-word display name).
func DetectLayout(ctx context.Context, path string, sampleSize int) (*DetectionResult, error) {
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	lines, err := sampleFile(path, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("sampling %s: %w", path, err)
	}

	return DetectLayoutFromLines(lines), nil
}

// DetectLayoutFromLines decides the layout from a slice of sample lines.
// With no usable lines the connections layout is assumed.
func DetectLayoutFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		Layout: LayoutConnections,
	}

	var incoming, connections int
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result.SampledLines++

		tokens := strings.Fields(line)
		switch {
		case len(tokens) == LayoutConnections.TokenCount && strings.HasPrefix(tokens[len(tokens)-1], "{"):
			connections++
		case len(tokens) >= LayoutIncoming.TokenCount:
			incoming++
		}
	}

	if incoming > connections {
		result.Layout = LayoutIncoming
		result.MatchedLines = incoming
	} else {
		result.MatchedLines = connections
	}

	if result.SampledLines > 0 {
		result.Confidence = float64(result.MatchedLines) / float64(result.SampledLines)
	}

	return result
}

// sampleFile reads up to n lines from the head of a file.
func sampleFile(path string, n int) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() && len(lines) < n {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
