package tray

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
)

// Builder turns an ordered segment-name list into the finished tray line.
// It owns the fetch loop, empty-result filtering, the reversal step, the
// separator join, and the right-alignment fit against the surface width.
type Builder struct {
	registry     *segment.Registry
	separator    string
	rightPadding int
	logger       *slog.Logger
}

// NewBuilder creates a line builder over the given registry. A nil logger
// discards log output.
func NewBuilder(registry *segment.Registry, separator string, rightPadding int, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if rightPadding < 0 {
		rightPadding = 0
	}
	return &Builder{
		registry:     registry,
		separator:    separator,
		rightPadding: rightPadding,
		logger:       logger,
	}
}

// Build produces the tray line for the current tick. Names without a
// registered descriptor are skipped. Each selected segment is lazily
// activated (setup once, then an initial update) before its first fetch.
// Empty fetch results are dropped, the collected texts are reversed into
// reading order, joined with the separator, and the joined line is
// right-aligned so that rightPadding columns stay free at the surface's
// right edge.
//
// A fetch error or panic aborts the whole build; the caller substitutes the
// error placeholder for this tick.
func (b *Builder) Build(names []string, surfaceWidth int) (line string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tray build: segment panic: %v", r)
		}
	}()

	texts := make([]string, 0, len(names))
	for _, name := range names {
		seg, ok := b.registry.Get(name)
		if !ok {
			continue
		}

		if !seg.Activated() {
			if aerr := seg.Activate(); aerr != nil {
				// A segment whose setup failed stays registered but never
				// contributes; the rest of the line still renders.
				b.logger.Warn("segment setup failed, skipping", "segment", name, "error", aerr)
				continue
			}
		}

		text, ferr := seg.Fetch()
		if ferr != nil {
			return "", fmt.Errorf("tray build: segment %q fetch: %w", name, ferr)
		}
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}

	reverseTexts(texts)
	joined := strings.Join(texts, b.separator)
	return b.fit(joined, surfaceWidth), nil
}

// fit right-aligns line within surfaceWidth, leaving rightPadding trailing
// columns free. A line wider than the available field is returned as-is.
func (b *Builder) fit(line string, surfaceWidth int) string {
	if line == "" || surfaceWidth <= 0 {
		return line
	}
	field := surfaceWidth - b.rightPadding
	pad := field - VisibleWidth(line)
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}

// reverseTexts reverses in place. Segment texts are collected in selection
// order but rendered in the reverse; persistent-then-temporary selection
// reads temporary-first on screen.
func reverseTexts(texts []string) {
	for i, j := 0, len(texts)-1; i < j; i, j = i+1, j-1 {
		texts[i], texts[j] = texts[j], texts[i]
	}
}
