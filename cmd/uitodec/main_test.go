package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithArgs(t *testing.T) {
	type TC struct {
		name   string
		args   []string
		stdin  string
		code   int
		stdout string
	}

	tcs := []TC{
		{
			name:   "args",
			args:   []string{"394789199", "0", "4294967295"},
			code:   0,
			stdout: "394789199\n0\n4294967295\n",
		},
		{
			name:   "args with leading zeros",
			args:   []string{"007"},
			code:   0,
			stdout: "7\n",
		},
		{
			name:   "sweep",
			args:   []string{"-sweep", "42"},
			code:   0,
			stdout: "42\n",
		},
		{
			name:   "stdin",
			args:   []string{},
			stdin:  "7\n42\n123456789\n",
			code:   0,
			stdout: "7\n42\n123456789\n",
		},
		{
			name:   "stdin without trailing newline",
			args:   []string{},
			stdin:  "99",
			code:   0,
			stdout: "99\n",
		},
		{
			name: "invalid argument",
			args: []string{"12x"},
			code: 2,
		},
		{
			name: "out of range argument",
			args: []string{"4294967296"},
			code: 2,
		},
		{
			name:  "invalid stdin",
			args:  []string{},
			stdin: "boom\n",
			code:  1,
		},
		{
			name: "unknown flag",
			args: []string{"-nope"},
			code: 2,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := runWithArgs(tc.args, strings.NewReader(tc.stdin), stdout, stderr)

			require.Equal(t, tc.code, code)
			require.Equal(t, tc.stdout, stdout.String())

			if tc.code != 0 {
				require.NotEmpty(t, stderr.String())
			}
		})
	}
}
