package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-layout"
)

func TestDimSpec_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected layout.Dimension
		wantErr  bool
	}{
		{name: "points", input: `40`, expected: layout.Points(40)},
		{name: "fractional points", input: `12.5`, expected: layout.Points(12.5)},
		{name: "percent", input: `"50%"`, expected: layout.Percent(0.5)},
		{name: "auto", input: `"auto"`, expected: layout.Auto()},
		{name: "junk string", input: `"wide"`, wantErr: true},
		{name: "junk number", input: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d dimSpec
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.dim)
		})
	}
}

func TestRun_TextDump(t *testing.T) {
	in := strings.NewReader(`{
		"name": "root", "width": 100, "height": 50,
		"children": [
			{"name": "a", "grow": 1, "basis": 0},
			{"name": "b", "grow": 3, "basis": 0}
		]
	}`)
	var out strings.Builder

	require.NoError(t, run(&out, in, options{}))

	got := out.String()
	assert.Contains(t, got, "root at (0, 0) size 100x50")
	assert.Contains(t, got, "  a at (0, 0) size 25x50")
	assert.Contains(t, got, "  b at (25, 0) size 75x50")
}

func TestRun_JSONReport(t *testing.T) {
	in := strings.NewReader(`{"width": 100, "height": 50, "children": [{"name": "kid", "width": "50%", "height": 20}]}`)
	var out strings.Builder

	require.NoError(t, run(&out, in, options{asJSON: true}))

	var report nodeReport
	require.NoError(t, json.Unmarshal([]byte(out.String()), &report))
	require.Len(t, report.Children, 1)
	assert.Equal(t, "kid", report.Children[0].Name)
	assert.Equal(t, float32(50), report.Children[0].Width)
	assert.Equal(t, float32(20), report.Children[0].Height)
}

func TestRun_AvailableSpaceFlags(t *testing.T) {
	// An unsized root with a growing child fills the offered space only
	// through its own constraints, so size the root by percentage.
	in := strings.NewReader(`{"name": "root", "width": "100%", "height": "100%"}`)
	var out strings.Builder

	require.NoError(t, run(&out, in, options{width: 80, height: 60}))
	assert.Contains(t, out.String(), "root at (0, 0) size 80x60")
}

func TestRun_BadInput(t *testing.T) {
	assert.Error(t, run(&strings.Builder{}, strings.NewReader(`{]`), options{}))
	assert.Error(t, run(&strings.Builder{}, strings.NewReader(`{"direction": "diagonal"}`), options{}))
}
