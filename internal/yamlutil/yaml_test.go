package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions), which config structs never hold.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type testConfig struct {
	Name    string   `yaml:"name"`
	Count   int      `yaml:"count"`
	Enabled bool     `yaml:"enabled"`
	Tags    []string `yaml:"tags,omitempty"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown keys
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        []byte
		dest        any
		wantErr     error
		wantErrText string
		check       func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("got %+v", cfg)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:        "unknown field rejected",
			data:        []byte("name: test\ncolour: blue"),
			dest:        &testConfig{},
			wantErrText: "yamlutil:",
		},
		{
			name:        "invalid YAML syntax",
			data:        []byte("name: [unclosed"),
			dest:        &testConfig{},
			wantErrText: "yamlutil:",
		},
		{
			name: "unicode content",
			data: []byte("name: 日本語テスト"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				if got := v.(*testConfig).Name; got != "日本語テスト" {
					t.Errorf("Name = %q", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrText != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrText) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErrText)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes structs and round-trips through UnmarshalStrict
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testConfig{Name: "doc", Count: 3, Enabled: true, Tags: []string{"a", "b"}}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	text := string(data)
	for _, want := range []string{"name: doc", "count: 3", "enabled: true", "- a"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	var out testConfig
	if err := yamlutil.UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("UnmarshalStrict() error: %v", err)
	}
	if out.Name != in.Name || out.Count != in.Count || len(out.Tags) != 2 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
