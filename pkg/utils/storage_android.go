//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在打开 gdata 之前创建设置目录
// gdata 在 Android 上写入 /data/data/{包名}/saves，但不会自己创建该目录
func EnsureStorageDir() error {
	dir := StorageDir()
	if dir == "" {
		return fmt.Errorf("cannot determine Android package name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir %s: %w", dir, err)
	}
	return nil
}

// StorageDir 返回设置文件所在目录，无法确定时返回空字符串
func StorageDir() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg, "saves")
}

// androidPackage 从 /proc/self/cmdline 的第一个参数读取包名
// 独立进程的名字形如 "包名:进程名"，只取冒号前的部分
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := strings.Cut(string(data), "\x00")
	name, _, _ = strings.Cut(strings.TrimSpace(name), ":")
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
