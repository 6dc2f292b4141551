// Package testutil provides shared fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfilter/parser"
)

// PetstoreYAML is a compact OAS 3.0 document that exercises every
// filtering axis: tagged and untagged operations, per-operation
// security including the empty "no auth" marker, a reference path
// entry, nested component references with an allOf chain, and a
// component nothing references.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore API
  version: 1.0.0
tags:
  - name: pets
    description: Pet operations
  - name: store
    description: Store operations
  - name: internal
    description: Internal operations
paths:
  x-generated: true
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      security:
        - apiKey: []
      responses:
        '200':
          description: A list of pets
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/PetList'
    post:
      operationId: createPet
      tags: [pets, store]
      security:
        - oauth:
            - write
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/NewPet'
      responses:
        '201':
          description: Created
  /pets/{petId}:
    parameters:
      - $ref: '#/components/parameters/PetID'
    get:
      operationId: getPet
      tags: [pets]
      responses:
        '200':
          description: A pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
  /admin/metrics:
    get:
      operationId: readMetrics
      tags: [internal]
      security:
        - oauth:
            - admin
        - apiKey: []
      responses:
        '200':
          description: Metrics
  /health:
    get:
      operationId: checkHealth
      security: []
      responses:
        '200':
          description: OK
  /legacy:
    $ref: 'legacy.yaml#/paths/~1legacy'
components:
  schemas:
    Pet:
      allOf:
        - $ref: '#/components/schemas/NewPet'
        - type: object
          properties:
            id:
              type: integer
            category:
              $ref: '#/components/schemas/Category'
    NewPet:
      type: object
      properties:
        name:
          type: string
    PetList:
      type: array
      items:
        $ref: '#/components/schemas/Pet'
    Category:
      type: object
      properties:
        name:
          type: string
    Problem:
      type: object
      properties:
        detail:
          type: string
    Unused:
      type: object
  parameters:
    PetID:
      name: petId
      in: path
      required: true
      schema:
        type: integer
  responses:
    Error:
      description: Unexpected error
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Problem'
  securitySchemes:
    apiKey:
      type: apiKey
      name: X-API-Key
      in: header
    oauth:
      type: oauth2
      flows:
        clientCredentials:
          tokenUrl: https://auth.example.com/token
          scopes:
            write: Write access
            admin: Admin access
`

// MinimalJSON is a tiny OAS 3.0 document in JSON surface form.
const MinimalJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Minimal API", "version": "1.0.0"},
  "paths": {
    "/ping": {
      "get": {
        "responses": {"200": {"description": "pong"}}
      }
    }
  }
}`

// ParseYAML parses a YAML document string, failing the test on error.
func ParseYAML(t *testing.T, source string) *parser.ParseResult {
	t.Helper()
	result, err := parser.New().ParseBytes("fixture.yaml", []byte(source))
	require.NoError(t, err)
	return result
}

// ParsePetstore parses the PetstoreYAML fixture.
func ParsePetstore(t *testing.T) *parser.ParseResult {
	t.Helper()
	return ParseYAML(t, PetstoreYAML)
}

// WriteTempFile writes data to a file under t.TempDir and returns its
// path. The file is removed when the test completes.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
