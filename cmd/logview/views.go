package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/rxtech-lab/argo-console/internal/console"
)

// fileItem implements list.Item for a log file.
type fileItem struct {
	file console.LogFile
}

func (i fileItem) Title() string { return filepath.Base(i.file.Path) }
func (i fileItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.file.Key, i.file.Day.Format("2006-01-02"), FormatSize(i.file.Size))
}
func (i fileItem) FilterValue() string { return i.file.Key }

// NewFileItems converts log files into list items.
func NewFileItems(files []console.LogFile) []list.Item {
	items := make([]list.Item, 0, len(files))
	for _, f := range files {
		items = append(items, fileItem{file: f})
	}

	return items
}

// NewFileList creates the list of log files.
func NewFileList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Log Files"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

// NewViewer creates the viewport showing the content of a log file.
func NewViewer() viewport.Model {
	return viewport.New(0, 0)
}
