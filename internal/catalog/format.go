package catalog

import "fmt"

// FormatSize renders a byte count the way the manifest expects it:
// plain bytes below 1 KiB, then two-decimal KB and MB.
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}
