// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/sandrun/internal/sandbox"
)

// Flags binds the CLI flag set to a [sandbox.Spec].
type Flags struct {
	name string
	spec *sandbox.Spec

	versionFlag bool
	debugFlag   bool
	flagSet     *flag.FlagSet
}

// NewFlags creates a new [Flags] writing into the given spec. Parse errors
// and usage are written to output.
func NewFlags(name string, spec *sandbox.Spec, output io.Writer) *Flags {
	flags := &Flags{
		name: name,
		spec: spec,
	}

	flags.initFlagset(output)

	return flags
}

func (f *Flags) initFlagset(output io.Writer) {
	fsName := f.name + " [flags...] payload [initargs...]"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&f.spec.QemuExecutable,
		"qemu-bin",
		f.spec.QemuExecutable,
		"QEMU binary to use",
	)

	fs.Var(
		filePathValue{&f.spec.Kernel},
		"kernel",
		"path to the kernel to boot. Defaults to the image of the"+
			" currently running kernel.",
	)

	fs.StringVar(
		&f.spec.Machine,
		"machine",
		f.spec.Machine,
		"QEMU machine type to use",
	)

	fs.StringVar(
		&f.spec.CPU,
		"cpu",
		f.spec.CPU,
		"QEMU CPU type to use",
	)

	fs.Var(
		&limitedUintValue{Value: &f.spec.Memory, min: sandbox.MinMemory},
		"memory",
		"memory (in MiB) for the QEMU VM. Defaults to an estimate based"+
			" on the payload size, 0 restores the estimate.",
	)

	fs.Var(
		&limitedUintValue{Value: &f.spec.SMP, min: 1, max: 64},
		"smp",
		"number of CPUs for the QEMU VM",
	)

	fs.BoolVar(
		&f.spec.NoKVM,
		"nokvm",
		f.spec.NoKVM,
		"disable hardware support",
	)

	fs.TextVar(
		&f.spec.TransportType,
		"transport",
		&f.spec.TransportType,
		"io transport type: isa, pci, mmio",
	)

	fs.Var(
		resultPathValue{&f.spec.ResultPath},
		"output",
		"destination of the promoted guest output, \"-\" for stdout",
	)

	fs.Var(
		filePathValue{&f.spec.OutputSink},
		"output-sink",
		"host file backing the guest output channel. Defaults to a"+
			" unique file in the temp directory.",
	)

	fs.Var(
		filePathValue{&f.spec.StatusSink},
		"status-sink",
		"host file backing the guest status channel. Defaults to a"+
			" unique file in the temp directory.",
	)

	fs.BoolVar(
		&f.spec.Verbose,
		"verbose",
		f.spec.Verbose,
		"enable verbose guest system output",
	)

	fs.BoolVar(
		&f.debugFlag,
		"debug",
		f.debugFlag,
		"enable debug output",
	)

	fs.BoolVar(
		&f.versionFlag,
		"version",
		f.versionFlag,
		"show version and exit",
	)

	f.flagSet = fs
}

// Parse parses the given arguments into the bound spec.
//
// The first positional argument is the boot payload path, the remaining
// ones are passed to the guest init program.
func (f *Flags) Parse(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		// flag.Parse already printed the error and usage.
		return &ParseArgsError{msg: "parse flags", err: err}
	}

	if f.versionFlag {
		return nil
	}

	positional := f.flagSet.Args()
	if len(positional) < 1 {
		return f.Fail("positional arguments", ErrNoBootPayload)
	}

	payload, err := AbsoluteFilePath(positional[0])
	if err != nil {
		return f.Fail("boot payload path", err)
	}

	f.spec.Payload = payload
	f.spec.InitArgs = positional[1:]

	return nil
}

// Fail fails like flag does. It prints the error first and then usage.
func (f *Flags) Fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

// Debug returns whether debug output is enabled.
func (f *Flags) Debug() bool {
	return f.debugFlag
}

// Version returns whether version information is requested.
func (f *Flags) Version() bool {
	return f.versionFlag
}

func (f *Flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(
		f.flagSet.Output(),
		"%s: %s\n",
		f.name,
		buildInfo.Main.Version,
	)

	return nil
}
