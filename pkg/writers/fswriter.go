// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"k8s.io/klog/v2"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
}

// Write replaces Root/path/name atomically with blob. An empty blob is ignored.
func (f *FSWriter) Write(name, path string, blob []byte) error {
	if len(blob) == 0 {
		return nil
	}
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	if err := renameio.WriteFile(filePath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	klog.V(4).Infof("wrote %s (%d bytes)", filePath, len(blob))
	return nil
}
