package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxtech-lab/argo-console/internal/console"
)

// Application states.
const (
	StateFileSelect = iota
	StateFileView
)

// Model is the Bubble Tea model browsing the persisted log files.
type Model struct {
	state    int
	logDir   string
	fileList list.Model
	viewer   viewport.Model
	files    []console.LogFile
	current  console.LogFile
	err      error
	width    int
	height   int
}

// NewModel creates a Model listing the log files in logDir.
func NewModel(logDir string) Model {
	return Model{
		state:    StateFileSelect,
		logDir:   logDir,
		fileList: NewFileList(),
		viewer:   NewViewer(),
		files:    []console.LogFile{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadFiles(m.logDir)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == StateFileView {
				m.state = StateFileSelect

				return m, loadFiles(m.logDir)
			}
		case "r":
			if m.state == StateFileView {
				return m, loadContent(m.current)
			}

			return m, loadFiles(m.logDir)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width, msg.Height-4)
		m.viewer.Width = msg.Width
		m.viewer.Height = msg.Height - 4

		return m, nil

	case FilesLoadedMsg:
		m.files = msg.Files
		m.err = nil

		return m, m.fileList.SetItems(NewFileItems(msg.Files))

	case FileContentMsg:
		m.current = msg.File
		m.err = nil
		m.viewer.SetContent(msg.Content)
		m.viewer.GotoBottom()
		m.state = StateFileView

		return m, nil

	case LoadErrorMsg:
		m.err = msg.Err

		return m, nil

	case LogDirChangedMsg:
		return m.refresh(msg.Name)
	}

	switch m.state {
	case StateFileSelect:
		return m.updateFileSelect(msg)
	case StateFileView:
		return m.updateFileView(msg)
	}

	return m, nil
}

func (m Model) updateFileSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if item, ok := m.fileList.SelectedItem().(fileItem); ok {
			return m, loadContent(item.file)
		}
	}

	var cmd tea.Cmd
	m.fileList, cmd = m.fileList.Update(msg)

	return m, cmd
}

func (m Model) updateFileView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)

	return m, cmd
}

// refresh reloads the open file when it is the one that changed, or the
// file list while browsing.
func (m Model) refresh(name string) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFileView:
		if name == filepath.Base(m.current.Path) {
			return m, loadContent(m.current)
		}
	case StateFileSelect:
		return m, loadFiles(m.logDir)
	}

	return m, nil
}

func loadFiles(dir string) tea.Cmd {
	return func() tea.Msg {
		files, err := console.ListLogFiles(dir)
		if err != nil {
			return LoadErrorMsg{Err: fmt.Errorf("failed to list log files: %w", err)}
		}

		return FilesLoadedMsg{Files: files}
	}
}

func loadContent(f console.LogFile) tea.Cmd {
	return func() tea.Msg {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return LoadErrorMsg{Err: fmt.Errorf("failed to read log file: %w", err)}
		}

		return FileContentMsg{File: f, Content: string(content)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateFileSelect:
		s.WriteString(TitleStyle.Render("Argo Console - " + m.logDir))
		s.WriteString("\n\n")

		if len(m.files) == 0 {
			s.WriteString("No log files yet.\n")
		} else {
			s.WriteString(m.fileList.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Enter: open | r: reload | q: quit"))

	case StateFileView:
		s.WriteString(TitleStyle.Render(filepath.Base(m.current.Path)))
		s.WriteString("\n\n")
		s.WriteString(m.viewer.View())
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Esc: back | r: reload | q: quit"))
	}

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return s.String()
}
