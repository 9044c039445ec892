package helper

import "os"

// PathExists reports whether path names an existing file or directory.
// A directory covers hive-partitioned Parquet datasets.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
