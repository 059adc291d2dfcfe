package main

import "os"

func main() {
	// envsetup is advisory; only flag parsing errors exit non-zero.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
