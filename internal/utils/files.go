package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// Dir:  u=rwx, g=rx, o=rx (Requires +x to traverse)
const PermDir os.FileMode = 0755

// remoteSchemes are the storage schemes a job path may point at.
var remoteSchemes = []string{"hdfs://", "s3a://", "s3://", "viewfs://", "abfs://", "gs://", "file://"}

// --- Path Checks (String-based) ---

// IsRemotePath checks if the path carries a distributed filesystem scheme (hdfs://, s3a://, ...).
func IsRemotePath(path string) bool {
	lower := strings.ToLower(path)
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// IsKeytab checks if the path has a Kerberos keytab extension (.keytab, .kt).
func IsKeytab(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".keytab" || ext == ".kt"
}

// IsYaml checks if the path has a YAML extension (.yaml, .yml).
// Useful for config files.
func IsYaml(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// --- Filesystem Checks (OS-based) ---

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDir checks if a directory exists, and creates it if it doesn't.
func EnsureDir(path string) error {
	if DirExists(path) {
		return nil
	}
	return os.MkdirAll(path, PermDir)
}
