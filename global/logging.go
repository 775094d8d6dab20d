package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const (
	mb = 1000000
	kb = 1000

	defaultMaxLogSize = 2.5 * mb
	defaultMaxLogs    = 3
)

// rollingFileWriter appends to <dir>/<name>.log until it grows past maxSize,
// then shifts it to <name>-1.log (and the older ones up by one), keeping at most maxLogs files.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string

	maxSize int64
	maxLogs int

	mu *sync.Mutex
}

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		maxSize:       defaultMaxLogSize,
		maxLogs:       defaultMaxLogs,
		mu:            &sync.Mutex{},
	}
}

func (w rollingFileWriter) withLimits(maxSize int64, maxLogs int) rollingFileWriter {
	w.maxSize = maxSize
	w.maxLogs = maxLogs
	return w
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLogPath(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stats, err := os.Stat(w.mainLogPath())
	if err == nil && stats.Size()+int64(len(b)) > w.maxSize && stats.Size() > 0 {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// Indices of the archived logs, lowest (newest) first
func (w rollingFileWriter) archivedLogs() ([]int, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indices := lo.FilterMap(matches, func(name string, _ int) (int, bool) {
		index, ok := getLogIndex(w.FileName, name)
		return index, ok && index > 0
	})
	slices.Sort(indices)

	return indices, nil
}

func (w rollingFileWriter) rotate() error {
	indices, err := w.archivedLogs()
	if err != nil {
		return err
	}

	// maxLogs counts the main log too
	keep := w.maxLogs - 1

	// Highest index first so renames never clobber a file we still need
	for _, index := range slices.Backward(indices) {
		if index >= keep {
			if err := os.Remove(w.indexedLogPath(index)); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(w.indexedLogPath(index), w.indexedLogPath(index+1)); err != nil {
			return err
		}
	}

	if keep <= 0 {
		return os.Remove(w.mainLogPath())
	}

	return os.Rename(w.mainLogPath(), w.indexedLogPath(1))
}

func getLogIndex(baseFileName string, filePath string) (int, bool) {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, found := strings.CutPrefix(fileName, baseFileName+"-")
	if !found {
		return 0, false
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return 0, false
	}

	return index, true
}
