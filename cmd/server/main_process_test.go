package main

import (
	"os"
	"os/exec"
	"testing"
)

const helperEnv = "OCTOFIT_SERVER_HELPER"

// TestMainProcess_Helper runs main in a child process when selected by
// helperEnv. It is a no-op in the normal test run.
func TestMainProcess_Helper(t *testing.T) {
	if os.Getenv(helperEnv) == "" {
		t.Skip("helper process only")
	}
	main()
}

func TestMainProcess_ExitsOnStartupFailure(t *testing.T) {
	cases := []struct {
		name string
		env  []string
	}{
		{
			name: "unreachable redis",
			env:  []string{"REDIS_URL=redis://127.0.0.1:0"},
		},
		{
			name: "unknown database driver",
			env:  []string{"REDIS_URL=", "DB_DRIVER=mongodb"},
		},
		{
			name: "unreachable postgres",
			env:  []string{"REDIS_URL=", "DB_DRIVER=postgres", "DB_HOST=127.0.0.1", "DB_PORT=1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainProcess_Helper$")
			cmd.Env = append(os.Environ(), helperEnv+"=1", "SERVER_ENV=development")
			cmd.Env = append(cmd.Env, tc.env...)

			if err := cmd.Run(); err == nil {
				t.Fatalf("expected helper process to exit with error")
			}
		})
	}
}
