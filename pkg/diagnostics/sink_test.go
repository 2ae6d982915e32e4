package diagnostics_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listing/pkg/diagnostics"
)

func TestSlogSink_WritesWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	diagnostics.Slog(logger).DecodeFailed("category", errors.New("model: missing id"))

	out := buf.String()
	for _, want := range []string{"level=WARN", "entity=category", "missing id"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output, got %q", want, out)
		}
	}
}

func TestRecorder_ConcurrentReports(t *testing.T) {
	rec := &diagnostics.Recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.DecodeFailed("image", errors.New("boom"))
		}()
	}
	wg.Wait()

	if got := len(rec.Reports()); got != 20 {
		t.Fatalf("expected 20 reports, got %d", got)
	}
}

func TestSinkFunc(t *testing.T) {
	var seen []string
	sink := diagnostics.SinkFunc(func(entity string, _ error) {
		seen = append(seen, entity)
	})
	sink.DecodeFailed("banner", nil)
	diagnostics.Discard.DecodeFailed("ignored", nil)

	if diff := cmp.Diff([]string{"banner"}, seen); diff != "" {
		t.Fatalf("entities mismatch (-want +got):\n%s", diff)
	}
}
