//go:build !windows

package models

func hasHiddenAttribute(string) (bool, error) {
	return false, nil
}
