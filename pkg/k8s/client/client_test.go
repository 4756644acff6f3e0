/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"os"
	"strings"
	"testing"
)

// TestBuildKubeClient_PathResolution tests the kubeconfig path resolution
// logic without attempting to connect to a cluster.
func TestBuildKubeClient_PathResolution(t *testing.T) {
	originalKubeconfig := os.Getenv("KUBECONFIG")
	defer func() {
		if originalKubeconfig != "" {
			os.Setenv("KUBECONFIG", originalKubeconfig)
		} else {
			os.Unsetenv("KUBECONFIG")
		}
	}()

	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
		errorContains string
	}{
		{
			name:          "explicit invalid path",
			kubeconfigArg: "/nonexistent/path/to/kubeconfig",
			errorContains: "failed to build kube config",
		},
		{
			name:          "env var with invalid path",
			kubeconfigArg: "",
			kubeconfigEnv: "/nonexistent/env/kubeconfig",
			errorContains: "failed to build kube config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kubeconfigEnv != "" {
				os.Setenv("KUBECONFIG", tt.kubeconfigEnv)
			} else {
				os.Unsetenv("KUBECONFIG")
			}

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("expected error containing %q, got %q", tt.errorContains, err.Error())
			}
		})
	}
}
