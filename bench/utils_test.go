package bench_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// memoryMB returns the live heap in megabytes.
func memoryMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / (1024 * 1024)
}

// gitInfo reads the current branch and short commit from repoRoot/.git.
func gitInfo(repoRoot string) (branch, commit string) {
	branch, commit = "dev", "local"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return branch, commit
	}
	ref := strings.TrimSpace(string(head))
	if !strings.HasPrefix(ref, "ref: ") {
		// Detached HEAD holds the commit itself.
		if len(ref) >= 8 {
			commit = ref[:8]
		}
		return branch, commit
	}
	ref = strings.TrimPrefix(ref, "ref: ")
	branch = strings.TrimPrefix(ref, "refs/heads/")

	if data, err := os.ReadFile(filepath.Join(repoRoot, ".git", ref)); err == nil {
		commit = strings.TrimSpace(string(data))
		if len(commit) >= 8 {
			commit = commit[:8]
		}
	}
	return branch, commit
}

// saveBenchmarkResult appends a result to benchmark_history/<resultsFile> in
// the repository root.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	branch, commit := gitInfo(repoRoot)
	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commit,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := os.ReadFile(latestFile); err == nil {
		var prev BenchmarkSummary
		if err := json.Unmarshal(existing, &prev); err == nil {
			summary.Results = append(prev.Results, metrics)
		}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(latestFile, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
