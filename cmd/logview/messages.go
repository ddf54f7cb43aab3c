package main

import "github.com/rxtech-lab/argo-console/internal/console"

// FilesLoadedMsg carries the log files found in the log directory.
type FilesLoadedMsg struct {
	Files []console.LogFile
}

// FileContentMsg carries the content of the opened log file.
type FileContentMsg struct {
	File    console.LogFile
	Content string
}

// LoadErrorMsg indicates that listing or reading log files failed.
type LoadErrorMsg struct {
	Err error
}

// LogDirChangedMsg indicates that a file in the log directory changed.
type LogDirChangedMsg struct {
	Name string
}
