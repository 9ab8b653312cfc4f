// cmsctl adalah tool operator untuk mengelola konten situs VisionGuard
// lewat API CMS: blog, FAQ, testimoni, portfolio, dan kiriman kontak.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
