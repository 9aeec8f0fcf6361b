package display

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSize is returned for size strings that cannot be parsed.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidSizeRange is returned for malformed MIN-MAX ranges.
	ErrInvalidSizeRange = errors.New("invalid size range")
)

// UnboundedSize is the upper bound of a range written without one ("1MB-").
const UnboundedSize int64 = math.MaxInt64

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// unitMultipliers maps upper-cased unit spellings to their byte multiplier.
var unitMultipliers = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
	"T":  1 << 40,
	"TB": 1 << 40,
}

// FormatSize renders a byte count with binary units.
// Examples: 0 -> "0 B", 1023 -> "1023 B", 1536 -> "1.5 KB", 1048576 -> "1.0 MB"
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}

	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024.0
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// ParseSize converts a human-readable size such as "10 MB", "1kB" or "512"
// back into bytes. Units are case-insensitive and may be separated from the
// number by whitespace. Fractional values are rounded to the nearest byte.
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidSize)
	}

	split := strings.IndexFunc(trimmed, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	number, unit := trimmed, ""
	if split >= 0 {
		number, unit = trimmed[:split], strings.TrimSpace(trimmed[split:])
	}
	if number == "" {
		return 0, fmt.Errorf("%w: %q has no number", ErrInvalidSize, s)
	}

	multiplier, ok := unitMultipliers[strings.ToUpper(unit)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSize, unit)
	}

	if !strings.Contains(number, ".") {
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSize, s, err)
		}
		if n > math.MaxInt64/multiplier {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
		}
		return n * multiplier, nil
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSize, s, err)
	}
	bytes := math.Round(f * float64(multiplier))
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
	}
	return int64(bytes), nil
}

// ParseSizeRange parses "MIN-MAX" into inclusive byte bounds. Either side may
// be omitted ("1KB-", "-10MB") but not both; an open upper bound is
// UnboundedSize.
func ParseSizeRange(s string) (minBytes, maxBytes int64, err error) {
	lower, upper, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q must look like MIN-MAX", ErrInvalidSizeRange, s)
	}

	lower, upper = strings.TrimSpace(lower), strings.TrimSpace(upper)
	if lower == "" && upper == "" {
		return 0, 0, fmt.Errorf("%w: %q has no bounds", ErrInvalidSizeRange, s)
	}

	minBytes, maxBytes = 0, UnboundedSize
	if lower != "" {
		if minBytes, err = ParseSize(lower); err != nil {
			return 0, 0, fmt.Errorf("%w: lower bound: %w", ErrInvalidSizeRange, err)
		}
	}
	if upper != "" {
		if maxBytes, err = ParseSize(upper); err != nil {
			return 0, 0, fmt.Errorf("%w: upper bound: %w", ErrInvalidSizeRange, err)
		}
	}

	if minBytes > maxBytes {
		return 0, 0, fmt.Errorf("%w: lower bound %s exceeds upper bound %s", ErrInvalidSizeRange, lower, upper)
	}
	return minBytes, maxBytes, nil
}
