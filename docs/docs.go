// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package docs embeds the OpenAPI specification served by the HTTP adapter.
package docs

import _ "embed"

// OpenAPISpec holds the OpenAPI specification in YAML form.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
