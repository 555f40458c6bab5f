//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkBlockTransformer benchmarks the subset transformer on typical inputs.
func BenchmarkBlockTransformer(b *testing.B) {
	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\nWorld"},
		{"paragraph", strings.Repeat("This is a **paragraph** with __some__ text.\n\n", 10)},
		{"headings", generateHeadingsMarkdown(20)},
		{"mixed_small", generateMixedMarkdown(10)},
		{"mixed_medium", generateMixedMarkdown(50)},
		{"mixed_large", generateMixedMarkdown(200)},
	}

	for _, mode := range []Mode{ModeBlock, ModeLine} {
		tr := &BlockTransformer{Mode: mode, Inline: InlineTransformer{CustomSyntax: true}}
		for _, input := range inputs {
			b.Run(mode.String()+"/"+input.name, func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_ = tr.Transform(input.content)
				}
			})
		}
	}
}

// BenchmarkGoldmarkToHTML benchmarks the reference engine on the same inputs.
func BenchmarkGoldmarkToHTML(b *testing.B) {
	converter := NewGoldmarkConverter()
	ctx := context.Background()

	sizes := []int{1, 10, 50, 200}

	for _, size := range sizes {
		content := generateMixedMarkdown(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBlockTransformerParallel benchmarks concurrent use of one transformer.
func BenchmarkBlockTransformerParallel(b *testing.B) {
	tr := &BlockTransformer{Inline: InlineTransformer{CustomSyntax: true}}
	content := generateMixedMarkdown(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = tr.Transform(content)
		}
	})
}

func generateHeadingsMarkdown(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		level := i%6 + 1
		fmt.Fprintf(&sb, "%s Heading %d\n\nSome text under heading %d.\n\n", strings.Repeat("#", level), i, i)
	}
	return sb.String()
}

func generateMixedMarkdown(sections int) string {
	var sb strings.Builder
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&sb, "## Section %d\n\n", i)
		sb.WriteString("A paragraph with **bold**, __italic__, [[digest me]] and ((cut chars)).\n")
		sb.WriteString("It spans two lines.\n\n")
		sb.WriteString("- first\n- second\n- third\n\n")
		sb.WriteString("* one\n* two\n\n")
		sb.WriteString("1. alpha\n2. beta\n\n")
	}
	return sb.String()
}
