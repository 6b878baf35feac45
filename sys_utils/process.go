package sys_utils

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// RunningExecutables 返回当前正在运行的进程名集合（小写，已去重）
func RunningExecutables() (map[string]struct{}, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err == nil && name != "" {
			names[strings.ToLower(name)] = struct{}{}
		}
	}
	return names, nil
}
