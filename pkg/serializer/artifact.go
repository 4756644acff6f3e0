/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/dataloop-ai/computectl/pkg/defaults"
	"github.com/dataloop-ai/computectl/pkg/k8s/client"
)

// ConfigMapURIScheme prefixes output URIs that target a Kubernetes
// ConfigMap instead of a local file (cm://namespace/name).
const ConfigMapURIScheme = "cm://"

// ArtifactSink receives the fully encoded base64 artifact. The pipeline
// encodes entirely in memory first, so a sink never observes a partial
// artifact: either the complete bytes arrive or Write is not called.
type ArtifactSink interface {
	// Write persists the artifact. I/O failures surface verbatim.
	Write(ctx context.Context, artifact []byte) error

	// Destination describes where the artifact goes, for logging.
	Destination() string
}

// SinkOption configures a ConfigMap sink. File sinks ignore options.
type SinkOption func(*ConfigMapSink)

// WithKubeconfig sets an explicit kubeconfig path for ConfigMap writes,
// overriding KUBECONFIG/~/.kube/config discovery. An empty path keeps the
// automatic discovery.
func WithKubeconfig(path string) SinkOption {
	return func(s *ConfigMapSink) {
		s.kubeconfig = path
	}
}

// NewArtifactSink returns a sink for the given output path. Paths with the
// cm:// scheme write to a Kubernetes ConfigMap; anything else is a local
// file path.
func NewArtifactSink(path string, opts ...SinkOption) (ArtifactSink, error) {
	if strings.HasPrefix(path, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, err
		}
		s := &ConfigMapSink{namespace: namespace, name: name}
		for _, opt := range opts {
			opt(s)
		}
		return s, nil
	}
	return &FileSink{Path: path}, nil
}

// FileSink writes the artifact to a local file. The file handle is
// released even when the write fails.
type FileSink struct {
	Path string
}

// Write creates (or truncates) the file and writes the artifact.
func (s *FileSink) Write(ctx context.Context, artifact []byte) error {
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(artifact); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// Destination implements ArtifactSink.
func (s *FileSink) Destination() string {
	return s.Path
}

// ConfigMapSink writes the artifact into a Kubernetes ConfigMap, created
// or updated via server-side apply.
type ConfigMapSink struct {
	namespace  string
	name       string
	kubeconfig string
}

// Write applies the ConfigMap with the artifact under the "config.b64" key.
func (s *ConfigMapSink) Write(ctx context.Context, artifact []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	clientset, err := s.kubeClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	cm := accorev1.ConfigMap(s.name, s.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/managed-by": "computectl",
		}).
		WithData(map[string]string{
			"config.b64": string(artifact),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})

	_, err = clientset.CoreV1().ConfigMaps(s.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: "computectl",
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", s.namespace, s.name, err)
	}

	slog.Info("artifact written to ConfigMap", "namespace", s.namespace, "name", s.name)
	return nil
}

// Destination implements ArtifactSink.
func (s *ConfigMapSink) Destination() string {
	return ConfigMapURIScheme + s.namespace + "/" + s.name
}

// kubeClient builds the client from the explicit kubeconfig path when one
// was set, otherwise the cached auto-discovered client.
func (s *ConfigMapSink) kubeClient() (client.Interface, error) {
	if s.kubeconfig != "" {
		clientset, _, err := client.BuildKubeClient(s.kubeconfig)
		return clientset, err
	}
	clientset, _, err := client.GetKubeClient()
	return clientset, err
}

// parseConfigMapURI splits cm://namespace/name into its parts.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	trimmed := strings.TrimPrefix(uri, ConfigMapURIScheme)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: expected cm://namespace/name", uri)
	}
	return parts[0], parts[1], nil
}
