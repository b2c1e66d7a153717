package report

import (
	"strings"
	"testing"

	"github.com/wesleyorama2/rendermon/internal/render/metrics"
)

func fullRecord() metrics.Record {
	return metrics.Record{
		metrics.FPS:           58.123,
		metrics.DroppedFrames: 3,
		metrics.FrameTimeP95:  21.5,
		metrics.ScriptTime:    0.4567,
		metrics.RenderTime:    16.0,
		metrics.PaintTime:     16.6666,
		metrics.TotalTime:     33.1233,
		metrics.NodeCount:     42,
		metrics.HeapSize:      12.3456,
	}
}

func TestFormat_KeysAndUnits(t *testing.T) {
	got := Format(fullRecord(), 2)

	want := map[string]any{
		"fps":     "58.12 fps",
		"dropped": 3,
		"p95":     "21.50ms",
		"script":  "0.46ms",
		"render":  "16.00ms",
		"paint":   "16.67ms",
		"total":   "33.12ms",
		"nodes":   42,
		"heap":    "12.35MB",
	}

	if len(got) != len(want) {
		t.Errorf("len(Format()) = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Format()[%q] = %#v, want %#v", k, got[k], v)
		}
	}
}

func TestFormat_OnlyMeasuredKeys(t *testing.T) {
	got := Format(metrics.Record{metrics.NodeCount: 7}, 2)

	if len(got) != 1 {
		t.Fatalf("Format() = %v, want only nodes", got)
	}
	if got["nodes"] != 7 {
		t.Errorf("nodes = %v, want 7", got["nodes"])
	}
}

func TestFormat_DecimalsProperty(t *testing.T) {
	for d := 0; d <= 6; d++ {
		got := Format(fullRecord(), d)
		for key, v := range got {
			s, ok := v.(string)
			if !ok {
				continue
			}
			num := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(s, " fps"), "ms"), "MB")

			digits := 0
			if i := strings.IndexByte(num, '.'); i >= 0 {
				digits = len(num) - i - 1
			}
			if digits != d {
				t.Errorf("decimals=%d: %s = %q has %d fractional digits", d, key, s, digits)
			}
		}
	}
}

func TestFormat_NegativeDecimalsUseDefault(t *testing.T) {
	got := Format(metrics.Record{metrics.FPS: 60}, -1)
	if got["fps"] != "60.00 fps" {
		t.Errorf("fps = %v, want \"60.00 fps\"", got["fps"])
	}
}

func TestFormatted_KeysInDisplayOrder(t *testing.T) {
	got := Format(fullRecord(), 1).Keys()
	want := []string{"fps", "dropped", "p95", "script", "render", "paint", "total", "nodes", "heap"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestLabel(t *testing.T) {
	if got := Label("Counter"); got != "[rendermon] Counter" {
		t.Errorf("Label() = %q, want %q", got, "[rendermon] Counter")
	}
}
