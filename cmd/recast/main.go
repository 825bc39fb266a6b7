// Package main provides the Recast ML Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/recast-ml/recast/backend/webgpu"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Recast ML Framework %s\n", version)
			return
		case "probe":
			probe()
			return
		}
	}

	fmt.Println("Recast ML Framework - Storage Rewriting for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  probe      Report available GPU adapters")
}

// probe reports whether a conversion backend can run on this machine.
func probe() {
	if !webgpu.IsAvailable() {
		fmt.Println("WebGPU: not available")
		return
	}

	adapters, err := webgpu.ListAdapters()
	if err != nil {
		fmt.Printf("WebGPU: %v\n", err)
		return
	}

	fmt.Println("WebGPU: available")
	for i, info := range adapters {
		fmt.Printf("  adapter %d: %s (%s)\n", i, info.Device, info.Vendor)
		if info.Description != "" {
			fmt.Printf("    %s\n", info.Description)
		}
	}
}
