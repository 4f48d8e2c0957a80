//go:build !windows
// +build !windows

package main

import (
	"os"

	"github.com/ramr/go-reaper"
)

// startReaper reaps the zombie browser processes when pom runs as the init process of a container
func startReaper() {
	if os.Getpid() != 1 {
		return
	}

	go reaper.Reap()
}
