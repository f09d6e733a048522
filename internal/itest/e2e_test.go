//go:build integration

package itest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestE2E(t *testing.T) {
	repoRoot := mustRepoRoot(t)
	in := filepath.Join(repoRoot, "internal", "itest", "testdata", "take_ok.json")
	outDir := t.TempDir()

	res := runCLI(t, repoRoot, []string{"--log", "nop", "--out", outDir, in}, nil)
	if res.exitCode != 0 {
		t.Fatalf("exit code %d\noutput:\n%s", res.exitCode, res.output)
	}

	b, err := os.ReadFile(filepath.Join(outDir, "take_ok-transcript.txt"))
	if err != nil {
		t.Fatalf("missing notes: %v", err)
	}
	want := "\nCOMIENZO DEL DIÁLOGO\n\n" +
		"00:00:00 SPEAKER_00 Acción, ya\n" +
		"\nNOTAS\n\n" +
		"00:00:03 - SPEAKER_01 hola\n" +
		"00:00:05 SPEAKER_00 Corten\n" +
		"\nFIN DEL DIÁLOGO\n\n" +
		"\nNOTAS\n\n" +
		"\nSILENCIO\n\n" +
		"00:00:12 - SPEAKER_00 repetimos desde el principio\n"
	if string(b) != want {
		t.Fatalf("unexpected notes:\n%q\nwant:\n%q", b, want)
	}
}
