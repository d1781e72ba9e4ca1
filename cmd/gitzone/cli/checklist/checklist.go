// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package checklist renders the results of a series of health checks
// as a human-readable checklist or a JSON report. The validate
// command builds its output on this.
package checklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings do not cause a
// non-zero exit.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result. Checks are skipped when a
// prerequisite check failed.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Report is the JSON output structure.
type Report struct {
	Checks []Result `json:"checks"`
	OK     bool     `json:"ok"`
}

// BuildReport assembles the JSON report for a set of results.
func BuildReport(results []Result) Report {
	report := Report{Checks: results, OK: true}
	if report.Checks == nil {
		report.Checks = []Result{}
	}
	for _, result := range results {
		if result.Status == StatusFail {
			report.OK = false
		}
	}
	return report
}

var statusStyles = map[Status]lipgloss.Style{
	StatusPass: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	StatusFail: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	StatusWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	StatusSkip: lipgloss.NewStyle().Faint(true),
}

// Print writes the results as a checklist to w. Returns a
// [cli.ExitError] with code 1 when any check failed, nil otherwise,
// so callers can pass the return value straight up the command tree.
func Print(w io.Writer, results []Result) error {
	anyFailed := false

	for _, result := range results {
		tag := strings.ToUpper(string(result.Status))
		tag = statusStyles[result.Status].Render(fmt.Sprintf("%-5s", tag))
		fmt.Fprintf(w, "[%s]  %-24s  %s\n", tag, result.Name, result.Message)
		if result.Status == StatusFail {
			anyFailed = true
		}
	}

	fmt.Fprintln(w)
	if anyFailed {
		fmt.Fprintln(w, "Some checks failed.")
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}
