package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmvcosta/vcfkit/internal/transform"
	"github.com/jmvcosta/vcfkit/internal/vcard"
)

const sampleDoc = `BEGIN:VCARD
VERSION:2.1
N:Smith;John;;;
TEL:+351912345678
END:VCARD

BEGIN:VCARD
FN:Alice Baker
TEL;TYPE=HOME:123
END:VCARD
`

func TestServiceProcess(t *testing.T) {
	service := NewService(nil)
	ctx := context.Background()

	out, stats, err := service.Process(ctx, sampleDoc, transform.Options{
		FormatNumbers: true,
		FormatNames:   true,
		Sort:          true,
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if stats.Records != 2 {
		t.Errorf("Records = %d, want 2", stats.Records)
	}
	if !stats.Sorted {
		t.Error("Sorted flag not set")
	}
	wantApplied := []string{"format-numbers", "format-names"}
	if len(stats.Applied) != 2 || stats.Applied[0] != wantApplied[0] || stats.Applied[1] != wantApplied[1] {
		t.Errorf("Applied = %v, want %v", stats.Applied, wantApplied)
	}

	// Alice sorts before John Smith.
	if !strings.Contains(out, "FN:Alice Baker\n") {
		t.Error("output lost Alice's FN")
	}
	if strings.Index(out, "Alice Baker") > strings.Index(out, "John Smith") {
		t.Error("output not sorted by display name")
	}
	if !strings.Contains(out, "TEL:912 345 678") {
		t.Errorf("number not formatted:\n%s", out)
	}
}

func TestServiceProcessNoOperations(t *testing.T) {
	service := NewService(nil)

	_, _, err := service.Process(context.Background(), sampleDoc, transform.Options{})
	if !errors.Is(err, ErrNoOperations) {
		t.Errorf("err = %v, want ErrNoOperations", err)
	}
}

func TestServiceProcessMalformed(t *testing.T) {
	service := NewService(nil)

	_, _, err := service.Process(context.Background(), "END:VCARD\n", transform.Options{Sort: true})
	if !errors.Is(err, vcard.ErrMalformedDocument) {
		t.Errorf("err = %v, want ErrMalformedDocument", err)
	}
}

func TestServiceProcessReader(t *testing.T) {
	service := NewService(NewProcessLimiter(1, time.Second))

	// UTF-8 BOM must be skipped before parsing.
	input := "\xEF\xBB\xBF" + sampleDoc
	out, stats, err := service.ProcessReader(context.Background(),
		strings.NewReader(input), transform.Options{Sort: true})
	if err != nil {
		t.Fatalf("ProcessReader failed: %v", err)
	}
	if stats.Records != 2 {
		t.Errorf("Records = %d, want 2", stats.Records)
	}
	if !strings.HasPrefix(out, "BEGIN:VCARD") {
		t.Errorf("BOM leaked into output: %q", out[:20])
	}

	if got := service.Limiter().ActiveCount(); got != 0 {
		t.Errorf("limiter not released, ActiveCount = %d", got)
	}
}

func TestServiceTransforms(t *testing.T) {
	service := NewService(nil)
	defs := service.Transforms()
	if len(defs) != 7 {
		t.Errorf("got %d transforms, want 7", len(defs))
	}
}
