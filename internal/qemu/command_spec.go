// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// File descriptors 0, 1, 2 are standard in, out, err, so additional
// console backing files start at 3.
const minAdditionalFileDescriptor = 3

const (
	machineTypePC   = "pc"
	machineTypeQ35  = "q35"
	machineTypeVirt = "virt"
)

// Serial channel order is fixed: 0 interactive stdio, 1 captured program
// output, 2 captured exit status.
const (
	ConsoleStdio = iota
	ConsoleOutput
	ConsoleStatus
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the kernel to boot. Must match the boot payload, usually the
	// kernel the host is currently running.
	Kernel string

	// Path to the boot payload used as initial ramdisk. It must contain an
	// init program at /init that runs the guest workload and writes its
	// exit code to the status channel.
	Initramfs string

	// QEMU machine type to use. Depends on the QEMU binary used.
	Machine string

	// CPU type to use. Depends on machine type and QEMU binary used.
	CPU string

	// Number of CPUs for the guest.
	SMP uint64

	// Memory for the machine in MiB. Must be large enough to hold the boot
	// payload in less than half of it, or the guest kernel refuses to
	// unpack it.
	Memory uint64

	// Disable KVM support.
	NoKVM bool

	// Transport type for IO. This depends on machine type and the kernel.
	TransportType TransportType

	// OutputSink is the host file path that accumulates the guest
	// program's stdout channel.
	OutputSink string

	// StatusSink is the host file path that accumulates the guest's exit
	// status channel.
	StatusSink string

	// ExtraArgs are extra arguments that are passed to the QEMU command.
	// They must not interfere with the essential arguments set by the
	// command itself or an error will be returned on [NewCommand].
	ExtraArgs []Argument

	// Arguments to pass to the init program.
	InitArgs []string

	// Increase guest kernel logging.
	Verbose bool

	// ExecuteFunc overrides the process executor. Nil selects [Execute].
	// Tests substitute a fake guest here.
	ExecuteFunc ExecuteFunc
}

// AddDefaults adds host architecture specific default values to the given
// spec if the fields are not set yet.
func (s *CommandSpec) AddDefaults() error {
	var (
		executable    string
		machine       string
		transportType TransportType
	)

	switch runtime.GOARCH {
	case "amd64":
		executable = "qemu-system-x86_64"
		machine = machineTypeQ35
		transportType = TransportTypeISA
	case "arm64":
		executable = "qemu-system-aarch64"
		machine = machineTypeVirt
		transportType = TransportTypeMMIO
	case "riscv64":
		executable = "qemu-system-riscv64"
		machine = machineTypeVirt
		transportType = TransportTypeMMIO
	default:
		return &ArgumentError{"unsupported host arch: " + runtime.GOARCH}
	}

	if s.Executable == "" {
		s.Executable = executable
	}

	if s.Machine == "" {
		s.Machine = machine
	}

	if s.TransportType == "" {
		s.TransportType = transportType
	}

	if !s.NoKVM {
		s.NoKVM = !KVMAvailable()
	}

	return nil
}

// Validate checks for missing parameters and known incompatibilities.
func (s *CommandSpec) Validate() error {
	if s.OutputSink == "" {
		return &ArgumentError{"output sink path must be set"}
	}

	if s.StatusSink == "" {
		return &ArgumentError{"status sink path must be set"}
	}

	if !s.TransportType.isKnown() {
		return &ArgumentError{
			"unknown transport type: " + string(s.TransportType),
		}
	}

	switch s.Machine {
	case machineTypeVirt:
		if s.TransportType == TransportTypeISA {
			return &ArgumentError{"virt requires virtio transport"}
		}
	case machineTypeQ35, machineTypePC:
		if s.TransportType == TransportTypeMMIO {
			return &ArgumentError{
				s.Machine + " does not work with virtio-mmio",
			}
		}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		UniqueArg("kernel", s.Kernel),
		UniqueArg("initrd", s.Initramfs),
	}

	if s.Machine != "" {
		args = append(args, UniqueArg("machine", s.Machine))
	}

	if s.CPU != "" {
		args = append(args, UniqueArg("cpu", s.CPU))
	}

	if s.SMP != 0 {
		args = append(args, UniqueArg("smp", strconv.FormatUint(s.SMP, 10)))
	}

	if s.Memory != 0 {
		args = append(args, UniqueArg("m", strconv.FormatUint(s.Memory, 10)))
	}

	if !s.NoKVM {
		args = append(args, UniqueArg("enable-kvm", ""))
	}

	args = append(args, prepareConsoleArgs(s.TransportType)...)

	// Channel 0: interactive console on the host's stdio.
	args = s.appendConsoleArgs(args, consoleArg{
		id:      "stdio",
		backend: "stdio",
	})

	// Captured channels: guest output and exit status. Written to file
	// descriptors provided by [os/exec.Cmd.ExtraFiles].
	for _, channel := range []int{ConsoleOutput, ConsoleStatus} {
		idx := channel - ConsoleOutput
		args = s.appendConsoleArgs(args, consoleArg{
			id:      fmt.Sprintf("con%d", idx),
			backend: "file",
			opts:    []string{"path=" + fdPath(minAdditionalFileDescriptor+idx)},
		})
	}

	args = append(args,
		// Disable video output.
		UniqueArg("display", "none"),
		// Disable QEMU monitor.
		UniqueArg("monitor", "none"),
		// Guest must not reboot, a panic terminates the process.
		UniqueArg("no-reboot"),
		// Disable all default devices.
		UniqueArg("nodefaults"),
		// Do not load any user config files.
		UniqueArg("no-user-config"),
	)

	args = append(args, s.ExtraArgs...)

	kernelCmdline := strings.Join(s.kernelCmdlineArgs(), " ")
	args = append(args, RepeatableArg("append", kernelCmdline))

	return args
}

// kernelCmdlineArgs returns the kernel cmdline arguments.
func (s *CommandSpec) kernelCmdlineArgs() []string {
	cmdline := []string{
		"console=" + s.TransportType.ConsoleDeviceName(ConsoleStdio),
		"init=/init",
		// Exit on panic instead of rebooting in a loop.
		"panic=-1",
	}

	if s.Verbose {
		cmdline = append(cmdline, "debug")
	} else {
		cmdline = append(cmdline, "loglevel=1")
	}

	if len(s.InitArgs) > 0 {
		cmdline = append(cmdline, "--")
		cmdline = append(cmdline, s.InitArgs...)
	}

	return cmdline
}

type consoleArg struct {
	id      string
	backend string
	opts    []string
}

func (s *CommandSpec) appendConsoleArgs(
	args []Argument,
	console consoleArg,
) []Argument {
	var devArg Argument

	switch s.TransportType {
	case TransportTypeISA:
		devArg = RepeatableArg("serial", "chardev:"+console.id)
	case TransportTypePCI, TransportTypeMMIO:
		devArg = RepeatableArg("device", "virtconsole,chardev="+console.id)
	default: // Ignore invalid transport types.
		return args
	}

	chardevOpts := make([]string, 0, len(console.opts)+2)
	chardevOpts = append(chardevOpts, console.backend, "id="+console.id)
	chardevOpts = append(chardevOpts, console.opts...)

	chardevArg := RepeatableArg("chardev", strings.Join(chardevOpts, ","))

	return append(args, chardevArg, devArg)
}

func fdPath(fd int) string {
	return fmt.Sprintf("/dev/fd/%d", fd)
}
