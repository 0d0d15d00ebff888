package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mahjong-hand/config"
	"mahjong-hand/hand"
	"mahjong-hand/scoring"
	"mahjong-hand/tenpai"
)

// Formatter prints "time [level] file:line func message fields".
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	caller := ""
	if entry.HasCaller() {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		funcName = funcName[strings.LastIndex(funcName, ".")+1:]
		caller = fmt.Sprintf(" %s:%d %s", fileName, entry.Caller.Line, funcName)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]%s %s", timestamp, level, caller, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// newLogger builds the process logger from the log options. Output goes to
// stderr, or to a daily rotated file when one is configured.
func newLogger(opts config.Log, stderr io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(stderr)
	if opts.File != "" {
		writer, err := rotatingWriter(opts.File)
		if err != nil {
			return nil, err
		}
		l.SetOutput(writer)
	}

	if opts.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		l.SetReportCaller(true)
		l.SetFormatter(&Formatter{})
	}
	return l, nil
}

func rotatingWriter(path string) (io.Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	pattern := strings.TrimSuffix(path, filepath.Ext(path)) + "-%Y%m%d" + filepath.Ext(path)
	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	return writer, errors.Wrap(err, "create log writer")
}

// installLogger hands l to every library package.
func installLogger(l logrus.FieldLogger) {
	hand.SetLogger(l)
	scoring.SetLogger(l)
	tenpai.SetLogger(l)
}
