// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aibor/sandrun/internal/sandbox"
)

const localConfigFile = ".sandrun.yaml"

// localConfig is the optional per-directory configuration file. It
// provides defaults only, CLI flags take precedence.
type localConfig struct {
	QemuBin   string `yaml:"qemu-bin"`
	Kernel    string `yaml:"kernel"`
	Machine   string `yaml:"machine"`
	CPU       string `yaml:"cpu"`
	Memory    uint64 `yaml:"memory"`
	SMP       uint64 `yaml:"smp"`
	NoKVM     bool   `yaml:"nokvm"`
	Transport string `yaml:"transport"`
}

// EnvArgs returns sandrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv("SANDRUN_ARGS"))
}

// ApplyLocalConfig reads the local config file from the given file system
// and applies it to the given spec. A missing file is not an error.
// Environment variables in the file are expanded with [os.ExpandEnv].
func ApplyLocalConfig(fsys fs.FS, file string, spec *sandbox.Spec) error {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read file: %w", err)
	}

	var cfg localConfig

	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(conf))), &cfg)
	if err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	spec.QemuExecutable = cfg.QemuBin
	spec.Kernel = cfg.Kernel
	spec.Machine = cfg.Machine
	spec.CPU = cfg.CPU
	spec.Memory = cfg.Memory
	spec.SMP = cfg.SMP
	spec.NoKVM = cfg.NoKVM

	if cfg.Transport != "" {
		err = spec.TransportType.UnmarshalText([]byte(cfg.Transport))
		if err != nil {
			return fmt.Errorf("transport %q: %w", cfg.Transport, err)
		}
	}

	return nil
}
