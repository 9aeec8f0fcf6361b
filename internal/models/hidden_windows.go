//go:build windows

package models

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func hasHiddenAttribute(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, fmt.Errorf("encode path %s: %w", path, err)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, fmt.Errorf("read attributes of %s: %w", path, err)
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
