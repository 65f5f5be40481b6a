// Package system probes the host: CPU and memory headroom for the
// render worker pool, the installed ffmpeg build, and process resource
// limits.
package system

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const maxRenderWorkers = 16

// RenderWorkers sizes the storyboard worker pool from the host's
// logical CPU count, then trims it so the supersampled frame buffers
// fit comfortably in available memory.
func RenderWorkers(width, height int) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > maxRenderWorkers {
		workers = maxRenderWorkers
	}

	// Each worker holds a supersampled frame plus the scaled source
	// window, roughly six times the output frame.
	perWorker := uint64(width) * uint64(height) * 4 * 6
	if vm, err := mem.VirtualMemory(); err == nil && perWorker > 0 {
		if budget := vm.Available / 2; budget/perWorker < uint64(workers) {
			workers = int(budget / perWorker)
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}

// DetectEncoder returns the best H.264 encoder the installed ffmpeg
// offers, preferring hardware paths over libx264.
func DetectEncoder() string {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").CombinedOutput()
	if err != nil {
		log.Debug().Err(err).Msg("ffmpeg encoder probe failed, assuming libx264")
		return "libx264"
	}

	for _, enc := range []string{"h264_videotoolbox", "h264_nvenc"} {
		if strings.Contains(string(out), enc) {
			return enc
		}
	}
	return "libx264"
}

// HasFilter reports whether the installed ffmpeg build ships the named
// filter.
func HasFilter(name string) bool {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-filters").CombinedOutput()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), " "+name+" ")
}

// FFmpegVersion returns the first line of `ffmpeg -version`.
func FFmpegVersion() (string, error) {
	out, err := exec.Command("ffmpeg", "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg not available: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line, nil
}

// InitResourceLimits raises the soft open-file limit so a large
// storyboard can be written without hitting EMFILE.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn().Err(err).Msg("could not read the open-file limit")
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn().Err(err).Msg("could not raise the open-file limit")
		return
	}
	log.Debug().Uint64("limit", rLimit.Cur).Msg("open-file limit raised")
}
