package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return p
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := execute(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestAllCountsOnFile(t *testing.T) {
	f := writeFile(t, t.TempDir(), "a.txt", "hello world\n")
	code, out, errOut := runCLI(t, "", f)
	if code != ExitOK {
		t.Fatalf("unexpected code %d, stderr=%q", code, errOut)
	}
	if out != "1 2 12 "+f+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
	if errOut != "" {
		t.Fatalf("stderr should be empty on success: %q", errOut)
	}
}

func TestModesOnFile(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.txt", "")
	abc := writeFile(t, dir, "abc.txt", "abc")
	text := writeFile(t, dir, "text.txt", "naïve café\nok\n")
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-l", empty}, "0\n"},
		{[]string{"-w", abc}, "0\n"},
		{[]string{"-c", text}, "16\n"},
		{[]string{"-l", text}, "2\n"},
		{[]string{"-w", text}, "3\n"},
		{[]string{"-m", text}, "14\n"},
		{[]string{"-m", "--", text}, "14\n"},
		{[]string{"--", text}, "2 3 16 " + text + "\n"},
	}
	for _, c := range cases {
		code, out, errOut := runCLI(t, "", c.args...)
		if code != ExitOK {
			t.Fatalf("args=%v: code %d stderr=%q", c.args, code, errOut)
		}
		if out != c.want {
			t.Fatalf("args=%v: got %q want %q", c.args, out, c.want)
		}
	}
}

func TestStdin(t *testing.T) {
	code, out, _ := runCLI(t, "one two\nthree\n", "-w")
	if code != ExitOK || out != "3\n" {
		t.Fatalf("unexpected result: code=%d out=%q", code, out)
	}
}

func TestNoArgs(t *testing.T) {
	code, out, errOut := runCLI(t, "")
	if code != ExitArg {
		t.Fatalf("expected ExitArg, got %d", code)
	}
	if out != "" {
		t.Fatalf("stdout should be empty: %q", out)
	}
	if !strings.Contains(errOut, "Usage: ccwc [-c|-l|-w|-m] [file_path]") {
		t.Fatalf("missing usage: %q", errOut)
	}
}

func TestTooManyArgs(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-c", "a", "b")
	if code != ExitArg || out != "" || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("unexpected result: code=%d out=%q err=%q", code, out, errOut)
	}
}

func TestInvalidMode(t *testing.T) {
	f := writeFile(t, t.TempDir(), "a.txt", "x\n")
	code, out, errOut := runCLI(t, "", "-x", f)
	if code != ExitArg {
		t.Fatalf("expected ExitArg, got %d", code)
	}
	if out != "" {
		t.Fatalf("stdout should be empty: %q", out)
	}
	if !strings.Contains(errOut, "Invalid option: -x.") {
		t.Fatalf("message should name -x: %q", errOut)
	}
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	code, out, errOut := runCLI(t, "", "-c", missing)
	if code != ExitInput {
		t.Fatalf("expected ExitInput, got %d", code)
	}
	if out != "" || !strings.Contains(errOut, missing) {
		t.Fatalf("unexpected result: out=%q err=%q", out, errOut)
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != ExitOK || !strings.HasPrefix(out, "ccwc version ") {
		t.Fatalf("unexpected version output: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "", "--help")
	if code != ExitOK || !strings.Contains(out, "Usage:\n  ccwc [-c|-l|-w|-m] [file_path]") {
		t.Fatalf("unexpected help output: code=%d out=%q", code, out)
	}
}

func TestDebugLogging(t *testing.T) {
	code, out, errOut := runCLI(t, "a b\n", "--log-level=debug", "-l")
	if code != ExitOK || out != "1\n" {
		t.Fatalf("unexpected result: code=%d out=%q", code, out)
	}
	if !strings.Contains(errOut, "msg=counted") || !strings.Contains(errOut, "words=2") {
		t.Fatalf("expected debug records on stderr: %q", errOut)
	}
}

func TestBadLogLevel(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--log-level", "loud", "-l")
	if code != ExitArg || out != "" || !strings.Contains(errOut, "invalid log level") {
		t.Fatalf("unexpected result: code=%d out=%q err=%q", code, out, errOut)
	}
}
