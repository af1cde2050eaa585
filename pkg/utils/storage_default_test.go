//go:build !android

package utils

import "testing"

func TestEnsureStorageDirDesktop(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir() = %v, want nil", err)
	}
	if dir := StorageDir(); dir != "" {
		t.Errorf("StorageDir() = %q, want empty", dir)
	}
}
