package driver

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// AutoWorkers returns the number of physical cores, falling back to the
// logical CPU count when the platform does not report cores.
func AutoWorkers() int {
	n, err := cpu.Counts(false)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}

	return n
}
