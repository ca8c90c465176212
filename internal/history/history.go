// Package history provides command execution history storage and retrieval.
// Recording is best-effort: a failure to write history never fails the
// command that triggered it.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// HistoryFileName is the name of the history file.
const HistoryFileName = "history.yaml"

// Entry represents a single recorded engine run.
type Entry struct {
	// ID is a short unique identifier for the run.
	ID string `yaml:"id"`
	// Timestamp is when the run started.
	Timestamp time.Time `yaml:"timestamp"`
	// Command is the specdev command that ran (validate, lint, status).
	Command string `yaml:"command"`
	// Project is the project root the run inspected.
	Project string `yaml:"project,omitempty"`
	// Errors and Warnings are issue counts from the report.
	Errors   int `yaml:"errors"`
	Warnings int `yaml:"warnings"`
	// ExitCode is the process exit code the run mapped to.
	ExitCode int `yaml:"exit_code"`
	// Duration is the run duration in Go duration format.
	Duration string `yaml:"duration"`
}

// File is the YAML document containing all history entries, newest appended
// at the end.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// DefaultPath returns the default history file location,
// ~/.specdev/state/history.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".specdev", "state", HistoryFileName), nil
}

// Load reads the history file at path. A missing file yields empty history.
// A corrupted file is backed up and replaced with fresh history rather than
// failing the command.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var hf File
	if err := yaml.Unmarshal(data, &hf); err != nil {
		backup := path + ".backup"
		if err := os.Rename(path, backup); err != nil {
			return nil, fmt.Errorf("backing up corrupted history: %w", err)
		}
		return &File{}, nil
	}
	return &hf, nil
}

// Append adds an entry to the history file at path, trimming the oldest
// entries beyond maxEntries (0 means unlimited).
func Append(path string, entry Entry, maxEntries int) error {
	hf, err := Load(path)
	if err != nil {
		return err
	}

	hf.Entries = append(hf.Entries, entry)
	if maxEntries > 0 && len(hf.Entries) > maxEntries {
		hf.Entries = hf.Entries[len(hf.Entries)-maxEntries:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	data, err := yaml.Marshal(hf)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Record appends a run entry at the default location, generating its ID and
// timestamp. Errors are swallowed: history is never worth failing a run for.
func Record(command, project string, errors, warnings, exitCode int, duration time.Duration, maxEntries int) {
	path, err := DefaultPath()
	if err != nil {
		return
	}
	id, err := NewID()
	if err != nil {
		return
	}
	_ = Append(path, Entry{
		ID:        id,
		Timestamp: time.Now(),
		Command:   command,
		Project:   project,
		Errors:    errors,
		Warnings:  warnings,
		ExitCode:  exitCode,
		Duration:  duration.Round(time.Millisecond).String(),
	}, maxEntries)
}
