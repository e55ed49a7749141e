package main

import (
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Process exit codes.
const (
	exitStartup = 1 // Window, context or GPU resource creation failed.
	exitRender  = 2 // OpenGL reported an error while drawing a frame.
)

func init() {
	runtime.LockOSThread()
}

func main() {
	err := NewApp(parseArgs()).Run()
	if err != nil {
		log.Println(err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the process exit status for err.
func exitCode(err error) int {
	if _, ok := errors.Cause(err).(*renderError); ok {
		return exitRender
	}
	return exitStartup
}

// renderError marks an error which occurred inside the main loop.
type renderError struct {
	error
}
