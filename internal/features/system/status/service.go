package system_status

import (
	"errors"

	users_models "lessonbook/internal/features/users/models"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type SystemStatusService struct{}

type DiskStatusDTO struct {
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	FreeBytes   uint64  `json:"freeBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

type MemoryStatusDTO struct {
	TotalBytes     uint64  `json:"totalBytes"`
	UsedBytes      uint64  `json:"usedBytes"`
	AvailableBytes uint64  `json:"availableBytes"`
	UsedPercent    float64 `json:"usedPercent"`
}

type SystemStatusResponseDTO struct {
	Disk   DiskStatusDTO   `json:"disk"`
	Memory MemoryStatusDTO `json:"memory"`
}

// GetSystemStatus reports host disk and memory figures. Administrators
// only: the numbers describe the whole machine, not one user's data.
func (s *SystemStatusService) GetSystemStatus(user *users_models.User) (*SystemStatusResponseDTO, error) {
	if !user.Capabilities().Elevated {
		return nil, errors.New("only administrators can view system status")
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		return nil, err
	}

	memoryUsage, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	return &SystemStatusResponseDTO{
		Disk: DiskStatusDTO{
			TotalBytes:  diskUsage.Total,
			UsedBytes:   diskUsage.Used,
			FreeBytes:   diskUsage.Free,
			UsedPercent: diskUsage.UsedPercent,
		},
		Memory: MemoryStatusDTO{
			TotalBytes:     memoryUsage.Total,
			UsedBytes:      memoryUsage.Used,
			AvailableBytes: memoryUsage.Available,
			UsedPercent:    memoryUsage.UsedPercent,
		},
	}, nil
}
