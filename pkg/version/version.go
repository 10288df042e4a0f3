// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set at build time with
// -ldflags "-X github.com/gavinbunney/docsite/pkg/version.Version=<version>".
var Version = "dev"
