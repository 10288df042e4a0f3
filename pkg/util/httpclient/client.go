// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package httpclient

import "net/http"

// Client is the part of *http.Client used for remote checks
type Client interface {
	Do(req *http.Request) (resp *http.Response, err error)
}
