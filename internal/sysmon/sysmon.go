// Package sysmon samples host CPU and memory usage for the verbose run report.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	// Valid is false when neither value could be read.
	Valid bool
}

// String renders the snapshot as "CPU 3.1%, memory 42.0%".
func (s Stats) String() string {
	if !s.Valid {
		return "unavailable"
	}
	return fmt.Sprintf("CPU %.1f%%, memory %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a single CPU and memory snapshot. CPU uses interval=0, i.e.
// the delta since the previous call (or since boot on the first call).
// Read failures leave the matching field at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
		s.Valid = true
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.Valid = true
	}
	return s
}
