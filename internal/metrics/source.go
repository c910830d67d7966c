package metrics

import (
	"regexp"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/logger"
)

// DefaultDevicePattern matches SCSI/SATA-style and NVMe-style whole-disk
// names. Partitions and loop devices are excluded so a busy partition is
// not double-counted against its parent disk.
const DefaultDevicePattern = `^(sd[a-z]+|nvme[0-9]+n[0-9]+)$`

// sectorSize is the kernel's fixed accounting unit for block I/O.
const sectorSize = 512

// Source reads raw host counters via gopsutil. Every read is
// best-effort: a failing metric marks its reading invalid instead of
// failing the snapshot.
type Source struct {
	devices *regexp.Regexp
	log     logger.Logger
}

// NewSource creates a metric source monitoring block devices whose names
// match pattern. An empty pattern selects DefaultDevicePattern.
func NewSource(pattern string, log logger.Logger) (*Source, error) {
	if pattern == "" {
		pattern = DefaultDevicePattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid disk device pattern: "+pattern,
			"Provide a valid regular expression, e.g. ^sd[a-z]+$")
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Source{devices: re, log: log}, nil
}

// Snapshot samples all four metrics once. The timestamp is taken before
// the reads so rates derived from consecutive snapshots stay consistent.
func (s *Source) Snapshot() Snapshot {
	snap := Snapshot{At: time.Now()}
	snap.CPU = s.readCPU()
	snap.Mem = s.readMem()
	snap.Net = s.readNet()
	snap.Disk = s.readDisk()
	return snap
}

// readCPU returns per-core busy percentages since the previous call.
// gopsutil keeps the previous cpu times internally when interval is 0,
// so calling this once per tick yields per-tick percentages.
func (s *Source) readCPU() CPUReading {
	percents, err := cpu.Percent(0, true)
	if err != nil || len(percents) == 0 {
		s.log.Debug("cpu read failed: %v", err)
		return CPUReading{}
	}
	return CPUReading{PerCorePercent: percents, Valid: true}
}

func (s *Source) readMem() MemReading {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil || vm.Total == 0 {
		s.log.Debug("mem read failed: %v", err)
		return MemReading{}
	}
	return MemReading{UsedPercent: vm.UsedPercent, Valid: true}
}

// readNet sums cumulative RX/TX byte counters across all interfaces.
func (s *Source) readNet() NetReading {
	counters, err := net.IOCounters(false)
	if err != nil || len(counters) == 0 {
		s.log.Debug("net read failed: %v", err)
		return NetReading{}
	}
	var r NetReading
	for _, c := range counters {
		r.RxBytes += c.BytesRecv
		r.TxBytes += c.BytesSent
	}
	r.Valid = true
	return r
}

// readDisk returns cumulative read+write sector counts for every
// monitored block device. Disk stats are unavailable on some platforms;
// that surfaces as an invalid reading, never an error.
func (s *Source) readDisk() DiskReading {
	counters, err := disk.IOCounters()
	if err != nil {
		s.log.Debug("disk read failed: %v", err)
		return DiskReading{}
	}
	sectors := make(map[string]uint64, len(counters))
	for name, c := range counters {
		if !s.devices.MatchString(name) {
			continue
		}
		sectors[name] = (c.ReadBytes + c.WriteBytes) / sectorSize
	}
	if len(sectors) == 0 {
		return DiskReading{}
	}
	return DiskReading{Sectors: sectors, Valid: true}
}
