package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	lockTimeout       = 5 * time.Second
	lockRetryInterval = 50 * time.Millisecond
)

// writeResult encodes data per --format and writes it to stdout or, with
// --output, to a file guarded by a lock so concurrent invocations cannot
// interleave writes.
func writeResult(data any) error {
	encoded, err := encode(data)
	if err != nil {
		return fail("%v", err)
	}

	if outputPath == "" {
		fmt.Print(string(encoded))
		return nil
	}
	if err := writeFileLocked(outputPath, encoded); err != nil {
		return fail("%v", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %d members to %s\n", countMembers(data), outputPath)
	}
	return nil
}

func encode(data any) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown format %q: expected json or yaml", format)
}

// writeFileLocked writes data to path under an exclusive file lock. The lock
// lives next to the target so readers can take a shared lock on the same
// path.
func writeFileLocked(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("timed out waiting for lock on %s", path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func countMembers(data any) int {
	if items, ok := data.([]any); ok {
		return len(items)
	}
	return 1
}
