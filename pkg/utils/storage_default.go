//go:build !android

package utils

// EnsureStorageDir 桌面端和浏览器中由 gdata 自行创建存储位置
func EnsureStorageDir() error {
	return nil
}

// StorageDir 只有 Android 需要预先创建目录，其他平台返回空字符串
func StorageDir() string {
	return ""
}
