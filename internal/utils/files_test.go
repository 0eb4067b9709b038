package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsRemotePath(t *testing.T) {
	cases := map[string]bool{
		"hdfs:///user/alice/data": true,
		"HDFS://nn:8020/tmp":      true,
		"s3a://bucket/ckpt":       true,
		"/local/path":             false,
		"relative/hdfs://x":       false,
		"":                        false,
	}
	for input, want := range cases {
		if got := IsRemotePath(input); got != want {
			t.Errorf("IsRemotePath(%q) = %v; want %v", input, got, want)
		}
	}
}

func TestIsKeytab(t *testing.T) {
	if !IsKeytab("/etc/security/alice.keytab") || !IsKeytab("svc.KT") {
		t.Error("expected keytab extensions to be detected")
	}
	if IsKeytab("/etc/krb5.conf") {
		t.Error("krb5.conf is not a keytab")
	}
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) || FileExists(dir) || FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists returned unexpected result")
	}
	if !DirExists(dir) || DirExists(file) {
		t.Error("DirExists returned unexpected result")
	}

	nested := filepath.Join(dir, "a", "b")
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if !DirExists(nested) {
		t.Errorf("EnsureDir did not create %s", nested)
	}
}

func TestFormatMebibytes(t *testing.T) {
	cases := map[int64]string{
		0:    "0B",
		1:    "1MiB",
		1536: "1.5GiB",
		2048: "2GiB",
	}
	for input, want := range cases {
		if got := FormatMebibytes(input); got != want {
			t.Errorf("FormatMebibytes(%d) = %q; want %q", input, got, want)
		}
	}
}
