package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// UpdateGoldenEnv rewrites golden files instead of comparing when set to 1.
const UpdateGoldenEnv = "GREANIUM_UPDATE_GOLDEN"

// AssertGolden compares lines against testdata/<name>.golden and reports a
// character diff on mismatch.
func AssertGolden(t testing.TB, name string, lines []string) bool {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")
	got := strings.Join(lines, "\n") + "\n"

	if os.Getenv(UpdateGoldenEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
		return true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read golden file %s: %v", path, err)
		return false
	}
	want := strings.ReplaceAll(string(data), "\r\n", "\n")
	if want == got {
		return true
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))
	t.Errorf("%s does not match golden file %s:\n%s", name, path, dmp.DiffPrettyText(diffs))
	return false
}
