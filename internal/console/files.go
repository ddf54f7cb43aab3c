package console

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

var fileNamePattern = regexp.MustCompile(`^(.+)-(\d{4}-\d{2}-\d{2})\.log$`)

// LogFile describes one persisted log file.
type LogFile struct {
	Path string
	Key  string
	Day  time.Time
	Size int64
}

// ParseFileName splits "{key}-{YYYY}-{MM}-{DD}.log" into its routing key and day.
func ParseFileName(name string) (string, time.Time, bool) {
	matches := fileNamePattern.FindStringSubmatch(name)
	if len(matches) != 3 {
		return "", time.Time{}, false
	}

	day, err := time.Parse(fileDateLayout, matches[2])
	if err != nil {
		return "", time.Time{}, false
	}

	return matches[1], day, true
}

// ListLogFiles returns the log files in dir, newest day first and by key
// within a day. A missing directory yields no files.
func ListLogFiles(dir string) ([]LogFile, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []LogFile{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := []LogFile{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		key, day, ok := ParseFileName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, LogFile{
			Path: filepath.Join(dir, entry.Name()),
			Key:  key,
			Day:  day,
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].Day.Equal(files[j].Day) {
			return files[i].Day.After(files[j].Day)
		}

		return files[i].Key < files[j].Key
	})

	return files, nil
}
