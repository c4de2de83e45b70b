//go:build windows

package util

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// cliProcesses are parents that mean the binary was started from a shell.
var cliProcesses = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
	"bash.exe",
}

// IsRunFromGUI reports whether the process was started by Explorer or had no
// console attached at start.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	hasConsole := hwnd != 0

	parentName := getParentProcessName()
	isCliParent := isCliProcess(parentName)

	slog.Debug("parent process", "name", parentName, "hasConsole", hasConsole, "shell", isCliParent)

	if !hasConsole {
		return true
	}

	if isCliParent {
		return false
	}

	return strings.EqualFold(parentName, "explorer.exe")
}

// getParentProcessName walks one process snapshot, remembering every
// executable name by pid, and returns the name of our parent.
func getParentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	self := uint32(os.Getpid())
	var parent uint32
	names := map[uint32]string{}
	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		names[pe.ProcessID] = windows.UTF16ToString(pe.ExeFile[:])
		if pe.ProcessID == self {
			parent = pe.ParentProcessID
		}
	}
	if parent == 0 {
		return ""
	}
	return names[parent]
}

func isCliProcess(name string) bool {
	for _, cli := range cliProcesses {
		if strings.EqualFold(name, cli) {
			return true
		}
	}
	return false
}
