package rewrite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZaguanLabs/frontkit"
	"github.com/ZaguanLabs/frontkit/storage"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readPage(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestUpdater_UpdateFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePage(t, dir, "app/courses/page.tsx", pageFixture)

	var out bytes.Buffer
	u := NewUpdater(storage.New(dir), WithOutput(&out))

	res := u.UpdateFile(ctx, "app/courses/page.tsx")
	if res.Status != StatusUpdated {
		t.Fatalf("expected updated, got %s (err %v)", res.Status, res.Err)
	}

	got := readPage(t, dir, "app/courses/page.tsx")
	want, _ := ApplySteps(pageFixture, DefaultSteps())
	if got != want {
		t.Error("file content does not match the rewritten fixture")
	}
	if !strings.Contains(out.String(), "🔄 Processing: app/courses/page.tsx") {
		t.Errorf("missing processing line in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✅ Updated: app/courses/page.tsx") {
		t.Errorf("missing updated line in output:\n%s", out.String())
	}

	// Second run sees both markers and leaves the file alone.
	res = u.UpdateFile(ctx, "app/courses/page.tsx")
	if res.Status != StatusAlreadyApplied {
		t.Errorf("expected already-applied, got %s", res.Status)
	}
	if again := readPage(t, dir, "app/courses/page.tsx"); again != got {
		t.Error("second run modified the file")
	}
}

func TestUpdater_UnchangedNotWritten(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePage(t, dir, "plain.tsx", "export const x = 1\n")

	info, err := os.Stat(filepath.Join(dir, "plain.tsx"))
	if err != nil {
		t.Fatal(err)
	}

	u := NewUpdater(storage.New(dir))
	res := u.UpdateFile(ctx, "plain.tsx")
	if res.Status != StatusUnchanged {
		t.Fatalf("expected unchanged, got %s", res.Status)
	}

	after, err := os.Stat(filepath.Join(dir, "plain.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(info.ModTime()) {
		t.Error("unchanged file was rewritten")
	}
}

func TestUpdater_DryRun(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePage(t, dir, "page.tsx", pageFixture)

	var out bytes.Buffer
	u := NewUpdater(storage.New(dir), WithDryRun(true), WithOutput(&out))

	res := u.UpdateFile(ctx, "page.tsx")
	if res.Status != StatusUpdated {
		t.Fatalf("expected updated, got %s (err %v)", res.Status, res.Err)
	}
	if readPage(t, dir, "page.tsx") != pageFixture {
		t.Error("dry run wrote the file")
	}
	if !strings.Contains(res.Diff, "--- page.tsx") || !strings.Contains(res.Diff, "+  const [isMobile, setIsMobile] = useState(false)") {
		t.Errorf("unexpected diff:\n%s", res.Diff)
	}
	if !strings.Contains(out.String(), "📝 Would update: page.tsx") {
		t.Errorf("missing dry-run line in output:\n%s", out.String())
	}
}

func TestUpdater_StepPanic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePage(t, dir, "bad.tsx", "explode\n")
	writePage(t, dir, "good.tsx", "<button>x</button>\n")

	steps := []Step{
		{Name: "buttons", Apply: AnimateButtons},
		{Name: "fragile", Apply: func(s string) string {
			if strings.Contains(s, "explode") {
				panic("cannot handle content")
			}
			return s
		}},
	}

	var out bytes.Buffer
	u := NewUpdater(storage.New(dir), WithSteps(steps), WithOutput(&out))
	report := u.Run(ctx, []string{"bad.tsx", "good.tsx"})

	bad := report.Files[0]
	if bad.Status != StatusError {
		t.Fatalf("expected error status, got %s", bad.Status)
	}
	var stepErr *frontkit.StepError
	if !errors.As(bad.Err, &stepErr) {
		t.Fatalf("expected StepError, got %T", bad.Err)
	}
	if stepErr.Step != "fragile" || stepErr.Path != "bad.tsx" {
		t.Errorf("unexpected step error fields: %+v", stepErr)
	}
	if readPage(t, dir, "bad.tsx") != "explode\n" {
		t.Error("failed file was modified")
	}

	if report.Files[1].Status != StatusUpdated {
		t.Errorf("run did not continue after a failure: %s", report.Files[1].Status)
	}
	if !strings.Contains(out.String(), "❌ Error processing bad.tsx:") {
		t.Errorf("missing error line in output:\n%s", out.String())
	}
}

func TestUpdater_Run(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePage(t, dir, "a.tsx", pageFixture)
	writePage(t, dir, "b.tsx", "<motion.div /> isMobile\n")

	var out bytes.Buffer
	u := NewUpdater(storage.New(dir), WithOutput(&out))
	report := u.Run(ctx, []string{"a.tsx", "missing.tsx", "b.tsx"})

	wantStatus := []Status{StatusUpdated, StatusNotFound, StatusAlreadyApplied}
	for i, want := range wantStatus {
		if got := report.Files[i].Status; got != want {
			t.Errorf("file %d: status %s, want %s", i, got, want)
		}
	}
	if report.Succeeded() != 2 || report.Failed() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", report.Succeeded(), report.Failed())
	}

	for _, line := range []string{
		"⚠️  File not found: missing.tsx",
		"✅ Already updated: b.tsx",
		"📊 Summary:",
		"✅ Successfully updated: 2 files",
		"❌ Failed: 1 files",
		"🎉 Done! Please test the pages.",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q:\n%s", line, out.String())
		}
	}
}

func TestUpdater_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := NewUpdater(storage.New(t.TempDir()))
	res := u.UpdateFile(ctx, "page.tsx")
	if res.Status != StatusError || !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected canceled error, got %s %v", res.Status, res.Err)
	}
}

func TestStatus_OK(t *testing.T) {
	tests := map[Status]bool{
		StatusUpdated:        true,
		StatusUnchanged:      true,
		StatusAlreadyApplied: true,
		StatusNotFound:       false,
		StatusError:          false,
	}
	for s, want := range tests {
		if got := s.OK(); got != want {
			t.Errorf("%s.OK() = %v, want %v", s, got, want)
		}
	}
}
